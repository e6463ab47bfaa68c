/*
File    : goripl/builtins/dump.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"fmt"

	"github.com/akashmaji946/goripl/forms"
	"github.com/davecgh/go-spew/spew"
)

// dump writes a deep structural dump of its argument to the runtime's
// output writer using go-spew, for inspecting the internal shape of a
// value (map indexes, procedure closures) beyond what String() shows.
func dump(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
	for _, a := range args {
		fmt.Fprint(rt.Writer(), spew.Sdump(a))
	}
	return forms.Nil, nil
}
