// Package animallibrary is a small library of animal types whose metadata is
// exported by the loader and report tests.
package animallibrary

import "time"

// Animal is implemented by everything that makes a sound.
type Animal interface {
	Sound() string
	Legs() int
	describe() string
}

// Walker is an Animal that can walk.
type Walker interface {
	Animal
	Walk(steps int)
}

// Pet is the common part of every domestic animal.
type Pet struct {
	Name    string
	Age     int
	Tags    []string
	Born    time.Time
	Owner   *Owner
	chipID  string
	visited bool
}

// NewPet creates a named pet.
func NewPet(name string) *Pet {
	return &Pet{Name: name}
}

// Rename changes the pet's name.
func (p *Pet) Rename(name string) {
	p.Name = name
}

// Sound is silent for an unspecified pet.
func (p Pet) Sound() string {
	return ""
}

func (p *Pet) markVisited() {
	p.visited = true
}

// Dog is a Pet with a breed.
type Dog struct {
	Pet
	Breed string
}

// NewDog creates a dog.
func NewDog(name, breed string) (*Dog, error) {
	return &Dog{Pet: Pet{Name: name}, Breed: breed}, nil
}

// Fetch returns what the dog brought back.
func (d *Dog) Fetch() string {
	return "ball"
}

// Sound overrides Pet.Sound.
func (d Dog) Sound() string {
	return "woof"
}

// Owner keeps track of pets.
type Owner struct {
	FullName string
	Pets     map[string]*Pet
}

// Color is a coat color.
type Color int

// Coat colors.
const (
	Black Color = iota
	White
	ginger
)

// DefaultColor is used when nothing else is known.
var DefaultColor Color = Black

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "ginger"
	}
}

// Names is a list of pet names.
type Names []string

// PetAlias is an alias, not a new type.
type PetAlias = Pet

type habitat struct {
	Region string
	area   float64
}

func (h habitat) Describe() string {
	return h.Region
}
