package rooms

import "testing"

func TestClassifyDefaultRules(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	cases := []struct {
		room string
		want Kind
	}{
		{"SALLE 12", KindRemote},
		{"salle 3", KindRemote},
		{"Cours en Distanciel", KindRemote},
		{"VISIO Teams", KindRemote},
		{"N102", KindPhysical},
		{"N2-Amphi", KindPhysical},
		{"Campus EPSI Nantes", KindPhysical},
		{"epsi - annexe", KindPhysical},
		{"B102-MXEA-001", KindMalformed},
		{"n102", KindMalformed}, // building codes are case sensitive
		{"", KindMalformed},
		{"   ", KindMalformed},
	}
	for _, c := range cases {
		if got := classifier.Classify(c.room); got != c.want {
			t.Errorf("Classify(%q) = %s, want %s", c.room, got, c.want)
		}
	}
}

func TestClassifyRemoteWinsOverPhysical(t *testing.T) {
	// a room can match both rule sets, the delivery mode sentinel decides
	classifier := NewClassifier(DefaultRules())
	if got := classifier.Classify("N3 distanciel"); got != KindRemote {
		t.Errorf("Classify(%q) = %s, want remote", "N3 distanciel", got)
	}
}
