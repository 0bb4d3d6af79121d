/*
Package dsl provides a fluent builder for assembling automata by state label.

It removes the bookkeeping of creating States, sets and the nested transition
table by hand, and validates the result before returning it.

Example usage:

	b := dsl.New()

	b.State("q0").Start().On("a", "q1")
	b.State("q1").On("b", "q2")
	b.State("q2").Accept()

	a, err := b.Build(dfa.WithName("ab"))
	if err != nil {
		log.Fatal(err)
	}
	ok, _ := a.Accepts("ab") // true

Symbols used in On are added to the alphabet automatically. Alphabet declares
extra symbols that have no transition.
*/
package dsl
