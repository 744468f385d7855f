package locale

// Form is a plural category.
type Form int

const (
	FormOne Form = iota
	FormFew
	FormMany
)

// PluralRu picks the Russian plural form for n.
func PluralRu(n int) Form {
	if n < 0 {
		n = -n
	}
	mod10, mod100 := n%10, n%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return FormOne
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return FormFew
	default:
		return FormMany
	}
}

// PluralEn picks the English plural form for n. Only FormOne and FormMany are used.
func PluralEn(n int) Form {
	if n == 1 {
		return FormOne
	}
	return FormMany
}

// forms maps plural categories to word forms.
type forms [3]string

func (f forms) pick(form Form) string { return f[form] }
