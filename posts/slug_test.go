package posts

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Étude de Cas: Réduction des Coûts!", "etude-de-cas-reduction-des-couts"},
		{"Hello, World!", "hello-world"},
		{"  Déjà   vu -- encore  ", "deja-vu-encore"},
		{"GESTION 2025", "gestion-2025"},
		{"çàéïôù", "caeiou"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	title := "Optimiser la Trésorerie des PME Québécoises"
	first := Slugify(title)
	for i := 0; i < 5; i++ {
		if got := Slugify(title); got != first {
			t.Fatalf("Slugify not deterministic: %q vs %q", got, first)
		}
	}
}

func TestSlugifyOutputIsValid(t *testing.T) {
	titles := []string{
		"Préparer un audit fiscal sans stress",
		"Mieux gérer vos stocks",
		"Daily Cash Flow Habits",
		"L'inventaire: 3 erreurs à éviter!",
	}
	for _, title := range titles {
		slug := Slugify(title)
		if !IsValidSlug(slug) {
			t.Errorf("Slugify(%q) produced invalid slug %q", title, slug)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"abc", "gestion-2025", "a1-b2-c3", "tresorerie"}
	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"ab",
		"Hello",
		"double--hyphen",
		"-leading",
		"trailing-",
		"with space",
		"accénté",
		string(make([]byte, 101)),
	}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = true, want false", s)
		}
	}
}
