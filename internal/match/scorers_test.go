package match

import (
	"math"
	"testing"
)

func TestSkillsScore(t *testing.T) {
	cases := []struct {
		name    string
		desired []string
		posting string
		want    float64
	}{
		{"no constraint", nil, "Go, SQL", 1},
		{"posting empty", []string{"go"}, "", 0},
		{"full overlap", []string{"python"}, "Python, SQL", 1},
		{"partial overlap", []string{"python", "rust"}, "Python, SQL", 0.5},
		{"no overlap", []string{"python"}, "Java", 0},
		{"containment both ways", []string{"react"}, "React.js", 1},
		{"desired longer than posting", []string{"react.js"}, "React", 1},
	}
	for _, c := range cases {
		if got := SkillsScore(CanonPhrases(c.desired), c.posting); got != c.want {
			t.Errorf("%s: SkillsScore = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestTitleScore(t *testing.T) {
	if got := TitleScore(nil, "Software Engineer"); got != 1 {
		t.Fatalf("no desired titles: got %v, want 1", got)
	}
	if got := TitleScore(CanonPhrases([]string{"Engineer"}), ""); got != 0 {
		t.Fatalf("posting title absent: got %v, want 0", got)
	}

	// {software, engineer} vs {senior, software, engineer}: 2/3
	desired := CanonPhrases([]string{"Software Engineer"})
	got := TitleScore(desired, "Senior Software Engineer")
	if math.Abs(got-2.0/3.0) > 1e-12 {
		t.Fatalf("jaccard overlap: got %v, want 2/3", got)
	}

	// Best phrase wins.
	desired = CanonPhrases([]string{"Data Scientist", "Senior Software Engineer"})
	if got := TitleScore(desired, "Senior Software Engineer"); got != 1 {
		t.Fatalf("best phrase: got %v, want 1", got)
	}
}

func TestJobTypeScore(t *testing.T) {
	if got := JobTypeScore(nil, ""); got != 1 {
		t.Fatalf("no constraint: got %v, want 1", got)
	}
	if got := JobTypeScore(CanonPhrases([]string{"Full-time"}), ""); got != 0 {
		t.Fatalf("posting type absent: got %v, want 0", got)
	}
	if got := JobTypeScore(CanonPhrases([]string{"Full-time", "Remote"}), "full-time"); got != 1 {
		t.Fatalf("case-insensitive match: got %v, want 1", got)
	}
	if got := JobTypeScore(CanonPhrases([]string{"Part-time"}), "Full-time"); got != 0 {
		t.Fatalf("mismatch: got %v, want 0", got)
	}
}

func TestSalaryScoreNoConstraint(t *testing.T) {
	if got := SalaryScore(nil, nil, fp(90000), nil); got != 1 {
		t.Fatalf("got %v, want 1", got)
	}
}

func TestSalaryScoreNoPostingSalary(t *testing.T) {
	if got := SalaryScore(fp(80000), nil, nil, nil); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestSalaryScoreOverlap(t *testing.T) {
	// Desired [80000, inf) overlaps posting [90000, inf).
	if got := SalaryScore(fp(80000), nil, fp(90000), nil); got != 1 {
		t.Fatalf("open-ended overlap: got %v, want 1", got)
	}
	if got := SalaryScore(fp(80000), fp(100000), fp(95000), fp(120000)); got != 1 {
		t.Fatalf("bounded overlap: got %v, want 1", got)
	}
}

func TestSalaryScoreLinearDecay(t *testing.T) {
	// Desired [80000, inf), posting [40000, 45000]: gap 35000 against a
	// decay limit of 40000 (half the 80000 midpoint).
	got := SalaryScore(fp(80000), nil, fp(40000), fp(45000))
	want := 1 - 35000.0/40000.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v, want %v", got, want)
	}

	// Beyond the limit the score floors at 0.
	if got := SalaryScore(fp(80000), nil, fp(10000), fp(20000)); got != 0 {
		t.Fatalf("far miss: got %v, want 0", got)
	}
}

func TestSalaryScoreMonotoneInGap(t *testing.T) {
	prev := 1.0
	for _, max := range []float64{79000, 70000, 60000, 50000, 41000, 30000} {
		got := SalaryScore(fp(80000), fp(120000), fp(10000), fp(max))
		if got > prev {
			t.Fatalf("score increased as gap grew: %v after %v (posting max %v)", got, prev, max)
		}
		prev = got
	}
}

func TestSalaryScoreInvertedDesiredRange(t *testing.T) {
	// min > max is tolerated as an unbounded range.
	if got := SalaryScore(fp(120000), fp(80000), fp(50000), fp(60000)); got != 1 {
		t.Fatalf("got %v, want 1", got)
	}
	// But it stays a declared preference: no posting salary still scores 0.
	if got := SalaryScore(fp(120000), fp(80000), nil, nil); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}
