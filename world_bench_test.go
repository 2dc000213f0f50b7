package synco

import (
	"testing"
)

func BenchmarkCreateWorld(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				_ = NewWorld(WithEntityCapacity(size))
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkWorldCreateEntity(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := NewWorld(WithEntityCapacity(size))
				b.StartTimer()
				for range size {
					w.Create()
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkAutoExpand(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size)+"_init_x2", func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := NewWorld(WithEntityCapacity(size))
				RegisterComponent[Position](w)
				b.StartTimer()
				for range size * 2 {
					w.Create().With(Position{})
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkInsertComponent(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := newTestWorld(b)
			es := make([]Entity, size)
			for i := range es {
				es[i] = w.Create().Entity()
			}
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				for _, e := range es {
					InsertComponent(w, e, Position{X: 1})
				}
			}
		})
	}
}

func BenchmarkRemoveComponent(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := newTestWorld(b)
			es := make([]Entity, size)
			for i := range es {
				es[i] = w.Create().Entity()
			}
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				b.StopTimer()
				for _, e := range es {
					InsertComponent(w, e, Position{})
				}
				b.StartTimer()
				for _, e := range es {
					RemoveComponent[Position](w, e)
				}
			}
		})
	}
}

func BenchmarkGetComponent(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := newTestWorld(b)
			es := make([]Entity, size)
			for i := range es {
				es[i] = w.Create().With(Position{X: float64(i)}).Entity()
			}
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				for _, e := range es {
					GetComponent[Position](w, e)
				}
			}
		})
	}
}

func BenchmarkRemoveEntities(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := newTestWorld(b)
			es := make([]Entity, size)
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				b.StopTimer()
				for i := range es {
					es[i] = w.Create().With(Position{}).With(Velocity{}).Entity()
				}
				b.StartTimer()
				for _, e := range es {
					w.Delete(e)
				}
			}
		})
	}
}

func BenchmarkQuery(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := newTestWorld(b)
			for i := range size {
				bld := w.Create().With(Position{}).With(Velocity{X: 1, Y: 1})
				if i%4 == 0 {
					bld.With(Frozen{})
				}
			}
			q := NewQuery(w, Tuple3(Write[Position](), Read[Velocity](), Not[Frozen]()))
			defer q.Close()
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				for _, row := range q.All() {
					row.V1.X += row.V2.X
					row.V1.Y += row.V2.Y
				}
			}
		})
	}
}

func BenchmarkQueryIter(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := newTestWorld(b)
			for range size {
				w.Create().With(Position{}).With(Velocity{X: 1, Y: 1})
			}
			q := NewQuery(w, Tuple2(Write[Position](), Read[Velocity]()))
			defer q.Close()
			it := q.Iter()
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				it.Reset()
				for it.Next() {
					pos, vel := it.Get().Unpack()
					pos.X += vel.X
				}
			}
		})
	}
}

func BenchmarkNewQuery(b *testing.B) {
	w := newTestWorld(b)
	p := Tuple4(Identity(), Write[Position](), Read[Velocity](), Not[Frozen]())
	b.ReportAllocs()
	for b.Loop() {
		NewQuery(w, p).Close()
	}
}
