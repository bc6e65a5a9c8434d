package mdh

import (
	"bytes"
	"io"
	"os"
	"testing"
)

func mustReadSample(b *testing.B, path string) []byte {
	b.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read %s: %v", path, err)
	}
	return data
}

func BenchmarkConvertSample(b *testing.B) {
	src := string(mustReadSample(b, "testdata/sample.md"))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Convert(src)
	}
}

func BenchmarkTokenizeSample(b *testing.B) {
	src := string(mustReadSample(b, "testdata/sample.md"))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Tokenize(src)
	}
}

func BenchmarkRenderSample(b *testing.B) {
	data := mustReadSample(b, "testdata/sample.md")
	reader := bytes.NewReader(data)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reader.Reset(data)
		_ = Render(RenderRequest{
			Reader: reader,
			Writer: io.Discard,
		})
	}
}
