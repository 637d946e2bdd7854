package dates

import (
	"testing"

	"github.com/persiancal/jdp/internal/jcal"
)

func TestNormalizeRelativeDateKeyword(t *testing.T) {
	if got, ok := NormalizeRelativeDateKeyword(" today "); !ok || got != "today" {
		t.Fatalf("NormalizeRelativeDateKeyword(today) = %q, %v", got, ok)
	}
	if got, ok := NormalizeRelativeDateKeyword("فردا"); !ok || got != "tomorrow" {
		t.Fatalf("NormalizeRelativeDateKeyword(فردا) = %q, %v", got, ok)
	}
	if _, ok := NormalizeRelativeDateKeyword("this-week"); ok {
		t.Fatalf("expected this-week to be rejected")
	}
	if !IsRelativeDateKeyword("YESTERDAY") {
		t.Fatalf("keywords should be case-insensitive")
	}
}

func TestResolveRelativeDateKeyword_Instants(t *testing.T) {
	today := jcal.MustNew(1403, 12, 30)

	res, ok := ResolveRelativeDateKeyword("today", today)
	if !ok || res.Date != today {
		t.Fatalf("unexpected today: %v ok=%v", res.Date, ok)
	}

	res, ok = ResolveRelativeDateKeyword("tomorrow", today)
	if !ok || res.Date != jcal.MustNew(1404, 1, 1) {
		t.Fatalf("unexpected tomorrow: %v ok=%v", res.Date, ok)
	}

	res, ok = ResolveRelativeDateKeyword("دیروز", today)
	if !ok || res.Date != jcal.MustNew(1403, 12, 29) || res.Keyword != "yesterday" {
		t.Fatalf("unexpected yesterday: %+v ok=%v", res, ok)
	}
}
