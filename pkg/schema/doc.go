// Package schema validates the structural consistency of an automaton's components.
//
// The engine itself stores whatever it is given. Validation is opt-in and is
// what NewValidated, the DSL builder and the file loader run before handing
// out an Automaton:
//
//	if err := schema.ValidateAutomaton(states, alphabet, table, start, accept); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        log.Println(e)
//	    }
//	}
//
// Every error returned by this package matches domain.ErrInvalidAutomaton with errors.Is.
package schema
