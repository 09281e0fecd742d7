package colors

import "testing"

func TestForSubjectDeterministic(t *testing.T) {
	subjects := []string{"Mathématiques", "Anglais", "Atelier Web", "DevOps", ""}
	for _, s := range subjects {
		first := ForSubject(s)
		second := ForSubject(s)
		if first != second {
			t.Errorf("ForSubject(%q) not stable: %v vs %v", s, first, second)
		}
		if first.Background == "" || first.Text == "" {
			t.Errorf("ForSubject(%q) produced an empty color: %+v", s, first)
		}
	}
}

func TestHashStringKnownValues(t *testing.T) {
	// same polynomial as the reference viewer so colors match across clients
	cases := map[string]uint32{
		"":  0,
		"a": 97,
		"ab": 97*31 + 98,
	}
	for input, want := range cases {
		if got := HashString(input); got != want {
			t.Errorf("HashString(%q) = %d, want %d", input, got, want)
		}
	}
}

func TestForSubjectHueSpread(t *testing.T) {
	// common subject names should not pile onto a handful of hues
	subjects := []string{
		"Mathématiques", "Anglais", "Communication", "Atelier Web",
		"DevOps", "Base de données", "Algorithmique", "Réseaux",
		"Gestion de projet", "Droit", "Cybersécurité", "Python",
		"Java", "Linux", "Économie", "Marketing",
	}
	buckets := make(map[uint32]int)
	for _, s := range subjects {
		// 36 degree wide buckets
		buckets[(HashString(s)%360)/36]++
	}
	if len(buckets) < 5 {
		t.Errorf("only %d hue buckets used for %d subjects", len(buckets), len(subjects))
	}
	for bucket, count := range buckets {
		if count > len(subjects)/2 {
			t.Errorf("bucket %d holds %d of %d subjects", bucket, count, len(subjects))
		}
	}
}
