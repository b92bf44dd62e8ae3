// Package birds lives below animallibrary and must not show up in its report.
package birds

import "metaexport/animallibrary"

// Parrot is a talking pet.
type Parrot struct {
	animallibrary.Pet
	Words []string
}

// Speak repeats the first word.
func (p *Parrot) Speak() string {
	if len(p.Words) == 0 {
		return ""
	}

	return p.Words[0]
}
