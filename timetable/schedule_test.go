package timetable

import (
	"slices"
	"testing"
)

func TestUniqueSubjectsFirstAppearanceOrder(t *testing.T) {
	week := Week{
		{Day: "Lundi", Courses: []Course{
			{Subject: "Maths"},
			{Subject: "Anglais"},
			{Subject: "Maths"},
		}},
		{Day: "Mardi", Courses: []Course{
			{Subject: "Anglais"},
			{Subject: "DevOps"},
		}},
		{Day: "Mercredi"},
		{Day: "Jeudi", Courses: []Course{
			{Subject: "Maths"},
			{Subject: "Droit"},
		}},
		{Day: "Vendredi"},
	}

	got := UniqueSubjects(week)
	want := []string{"Maths", "Anglais", "DevOps", "Droit"}
	if !slices.Equal(got, want) {
		t.Errorf("UniqueSubjects = %v, want %v", got, want)
	}
}

func TestUniqueSubjectsEmptyWeek(t *testing.T) {
	week := make(Week, 5)
	if got := UniqueSubjects(week); len(got) != 0 {
		t.Errorf("UniqueSubjects of empty week = %v", got)
	}
}

func TestAssignColorsConsistentAcrossDays(t *testing.T) {
	week := Week{
		{Day: "Lundi", Courses: []Course{{Subject: "Maths"}, {Subject: "Anglais"}}},
		{Day: "Mardi", Courses: []Course{{Subject: "Maths"}}},
	}
	assignColors(week)

	monday := week[0].Courses[0].Color
	tuesday := week[1].Courses[0].Color
	if monday != tuesday {
		t.Errorf("Maths colored %v on Lundi but %v on Mardi", monday, tuesday)
	}
	if week[0].Courses[0].Color == week[0].Courses[1].Color {
		t.Errorf("Maths and Anglais share a color: %v", monday)
	}
	if monday.Background == "" || monday.Text == "" {
		t.Errorf("color not populated: %+v", monday)
	}
}
