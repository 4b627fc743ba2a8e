package templating

import (
	"os"
	"testing"
)

func TestGenerateTemplate(t *testing.T) {
	os.Setenv("ALWAYS_THERE", "always_there")

	source := []byte(`
K={{ env "ALWAYS_THERE" }}
K={{ env "NONEXISTING" }}
K={{ default .NonExisting "default value" }}
K={{ default (env "ALWAYS_THERE") }}
K={{ required (default ( .NotValid ) "Valid") }}
K={{ default (env "NONEXISTING") "default value" }}
`)

	correctOutput := []byte(`
K=always_there
K=
K=default value
K=always_there
K=Valid
K=default value
`)

	result, err := GenerateTemplate(source)
	if err != nil {
		t.Fatal(err)
	}

	if string(result) != string(correctOutput) {
		t.Fatalf("Result:\n%s\n==== is not equal to correct template output:\n%s\n", result, correctOutput)
	}
}

func TestBrokenTemplate(t *testing.T) {
	if _, err := GenerateTemplate([]byte(`{{ env }}`)); err == nil {
		t.Fatal("A template calling env with no argument did not error.")
	}

	if _, err := GenerateTemplate([]byte(`{{ required .Missing }}`)); err == nil {
		t.Fatal("A template with a missing required value did not error.")
	}
}
