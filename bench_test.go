package vector_test

import (
	"testing"

	vector "github.com/imgk/vector-go"
)

func BenchmarkPushBack(b *testing.B) {
	b.ReportAllocs()
	v := vector.New[int]()
	for i := 0; i < b.N; i++ {
		if _, err := v.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPushBackPrealloc(b *testing.B) {
	b.ReportAllocs()
	v := vector.New[int]()
	if err := v.Reserve(b.N); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInsertFront(b *testing.B) {
	b.ReportAllocs()
	v := vector.New[int]()
	for i := 0; i < b.N; i++ {
		if _, err := v.Insert(0, i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkErase(b *testing.B) {
	v := vector.New[int]()
	if err := v.Resize(b.N); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Erase(0)
	}
}
