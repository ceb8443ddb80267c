package benchmarks

import (
	"testing"

	"github.com/comalice/tinyfsm"
)

type (
	flip  struct{}
	small struct {
		tinyfsm.Machine[*small]
		n int
	}
	up   struct{}
	down struct{}
)

func (up) Handle(s *small, _ flip) {
	s.n++
	tinyfsm.Enter[*down](&s.Machine)
}

func (down) Handle(s *small, _ flip) {
	s.n++
	tinyfsm.Enter[*up](&s.Machine)
}

func newSmall(b *testing.B, opts ...tinyfsm.Option) *small {
	s := &small{}
	if err := s.Init(s, tinyfsm.States{&up{}, &down{}}, opts...); err != nil {
		b.Fatal(err)
	}
	return s
}

func BenchmarkSmallProcess(b *testing.B) {
	for _, st := range []tinyfsm.Strategy{tinyfsm.StrategyProbe, tinyfsm.StrategyTable} {
		b.Run(st.String(), func(b *testing.B) {
			s := newSmall(b, tinyfsm.WithStrategy(st))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tinyfsm.Process(&s.Machine, flip{})
			}
		})
	}
}

func BenchmarkSmallIgnored(b *testing.B) {
	s := newSmall(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tinyfsm.Process(&s.Machine, Tick{})
	}
}

func BenchmarkLargeProcess(b *testing.B) {
	for _, st := range []tinyfsm.Strategy{tinyfsm.StrategyProbe, tinyfsm.StrategyTable} {
		b.Run(st.String(), func(b *testing.B) {
			h, err := NewHost(tinyfsm.WithStrategy(st))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := h.EnterID(uint(i % NumStates)); err != nil {
					b.Fatal(err)
				}
				tinyfsm.Process(&h.Machine, Tick{Seq: i})
			}
		})
	}
}

func BenchmarkCompiledDispatcher(b *testing.B) {
	h, err := NewHost()
	if err != nil {
		b.Fatal(err)
	}
	d := tinyfsm.Compile[Tick](&h.Machine)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Process(Tick{Seq: i})
	}
}

func BenchmarkEnter(b *testing.B) {
	h, err := NewHost()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tinyfsm.Enter[*S150](&h.Machine)
	}
}
