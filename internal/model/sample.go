package model

// SampleData returns the entries a fresh address book starts with.
func SampleData() []*Person {
	return []*Person{
		New("Hans", "Muster"),
		New("Ruth", "Mueller"),
		New("Heinz", "Kurz"),
		New("Cornelia", "Meier"),
		New("Werner", "Meyer"),
		New("Lydia", "Kunz"),
		New("Anna", "Best"),
		New("Stefan", "Meier"),
		New("Martin", "Mueller"),
	}
}
