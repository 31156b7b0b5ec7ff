package strategy

import "github.com/joeycumines/go-conjecture/choice"

// Go's generics have no variadic type parameters, so fixed-size tuples are
// provided up to a small, practical arity; higher arities compose via
// nested Pair/Triple or via Map over one of these.
type (
	Pair[A, B any]       struct{ A A; B B }
	Triple[A, B, C any]  struct{ A A; B B; C C }
	Quad[A, B, C, D any] struct{ A A; B B; C C; D D }
)

// Tuple2 draws each component in order, under a "tuple" label.
func Tuple2[A, B any](sa Strategy[A], sb Strategy[B]) Strategy[Pair[A, B]] {
	return Func[Pair[A, B]](func(p *choice.Provider) Pair[A, B] {
		defer p.Scope("tuple")()
		return Pair[A, B]{A: sa.DoDraw(p), B: sb.DoDraw(p)}
	})
}

// Tuple3 draws each component in order, under a "tuple" label.
func Tuple3[A, B, C any](sa Strategy[A], sb Strategy[B], sc Strategy[C]) Strategy[Triple[A, B, C]] {
	return Func[Triple[A, B, C]](func(p *choice.Provider) Triple[A, B, C] {
		defer p.Scope("tuple")()
		return Triple[A, B, C]{A: sa.DoDraw(p), B: sb.DoDraw(p), C: sc.DoDraw(p)}
	})
}

// Tuple4 draws each component in order, under a "tuple" label.
func Tuple4[A, B, C, D any](sa Strategy[A], sb Strategy[B], sc Strategy[C], sd Strategy[D]) Strategy[Quad[A, B, C, D]] {
	return Func[Quad[A, B, C, D]](func(p *choice.Provider) Quad[A, B, C, D] {
		defer p.Scope("tuple")()
		return Quad[A, B, C, D]{A: sa.DoDraw(p), B: sb.DoDraw(p), C: sc.DoDraw(p), D: sd.DoDraw(p)}
	})
}
