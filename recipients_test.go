package santacerts

import "testing"

func TestBuiltinRecipients(t *testing.T) {
	t.Parallel()

	recipients := BuiltinRecipients()
	if len(recipients) != 2 {
		t.Fatalf("got %d recipients, want 2", len(recipients))
	}

	wantSlugs := map[string]string{
		"Lia du Plessis":    "lia",
		"Daniel du Plessis": "daniel",
	}

	for _, r := range recipients {
		if err := r.Validate(); err != nil {
			t.Errorf("%s: built-in recipient invalid: %v", r.Name, err)
		}
		want, ok := wantSlugs[r.Name]
		if !ok {
			t.Errorf("unexpected recipient %q", r.Name)
			continue
		}
		if got := r.OutputSlug(); got != want {
			t.Errorf("%s: slug = %q, want %q", r.Name, got, want)
		}
	}
}
