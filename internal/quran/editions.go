package quran

// Well-known edition identifiers. Any other identifier the remote service
// recognises may be passed instead; the client never checks them.
const (
	EditionUthmani = "quran-uthmani"
	EditionAsad    = "en.asad"
	EditionGumi    = "ha.gumi"

	ReciterAlafasy    = "ar.alafasy"
	ReciterAbdulBasit = "ar.abdulbasitmurattal"
	ReciterHusary     = "ar.husary"
	ReciterMinshawi   = "ar.minshawi"
)

// Editions holds the editions used when a call does not name one.
type Editions struct {
	Source      string // Arabic text edition
	Translation string // translation paired with the source text
	Reciter     string // audio edition
}

// DefaultEditions returns the Uthmani text, Asad's English translation and
// Mishary Alafasy's recitation.
func DefaultEditions() Editions {
	return Editions{
		Source:      EditionUthmani,
		Translation: EditionAsad,
		Reciter:     ReciterAlafasy,
	}
}

func (e Editions) withDefaults() Editions {
	def := DefaultEditions()
	if e.Source == "" {
		e.Source = def.Source
	}
	if e.Translation == "" {
		e.Translation = def.Translation
	}
	if e.Reciter == "" {
		e.Reciter = def.Reciter
	}
	return e
}

// EditionOption is a selectable edition with a human readable label.
type EditionOption struct {
	ID    string
	Label string
}

// Translations lists the translation editions offered to users.
func Translations() []EditionOption {
	return []EditionOption{
		{ID: EditionAsad, Label: "English (Muhammad Asad)"},
		{ID: EditionGumi, Label: "Hausa (Abubakar Gumi)"},
	}
}

// Reciters lists the recitations offered to users.
func Reciters() []EditionOption {
	return []EditionOption{
		{ID: ReciterAlafasy, Label: "Mishary Alafasy"},
		{ID: ReciterAbdulBasit, Label: "Abdul Basit (Murattal)"},
		{ID: ReciterHusary, Label: "Mahmoud Khalil Al-Husary"},
		{ID: ReciterMinshawi, Label: "Mohamed Siddiq Al-Minshawi"},
	}
}

// EditionLabel returns the label of a known edition or the identifier itself.
func EditionLabel(id string) string {
	for _, opt := range append(Translations(), Reciters()...) {
		if opt.ID == id {
			return opt.Label
		}
	}
	return id
}
