package digest_test

import (
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Sum(t *testing.T) {
	value := struct {
		Name string `json:"name"`
	}{
		Name: "Bill",
	}

	// sha256(`{"name":"Bill"}`)
	exp := digest.SumBytes([]byte(`{"name":"Bill"}`))

	t.Log("Given the need to hash a value.")
	{
		t.Logf("\tTest 0:\tWhen handling a simple struct.")
		{
			h := digest.Sum(value)
			if h != exp {
				t.Logf("\t\tTest 0:\tgot: %s", h)
				t.Logf("\t\tTest 0:\texp: %s", exp)
				t.Fatalf("\t%s\tTest 0:\tShould get back the hash of the JSON form.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould get back the hash of the JSON form.", success)

			if len(h) != 64 {
				t.Fatalf("\t%s\tTest 0:\tShould get back a 64 character hash: %d", failed, len(h))
			}
			t.Logf("\t%s\tTest 0:\tShould get back a 64 character hash.", success)

			if h2 := digest.Sum(value); h2 != h {
				t.Fatalf("\t%s\tTest 0:\tShould get back the same hash twice.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould get back the same hash twice.", success)
		}

		t.Logf("\tTest 1:\tWhen handling a value that can't be marshaled.")
		{
			h := digest.Sum(func() {})
			if h != digest.ZeroHash {
				t.Fatalf("\t%s\tTest 1:\tShould get back the zero hash: %s", failed, h)
			}
			t.Logf("\t%s\tTest 1:\tShould get back the zero hash.", success)
		}
	}
}

func Test_SumBytes(t *testing.T) {
	const exp = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	if h := digest.SumBytes(nil); h != exp {
		t.Logf("got: %s", h)
		t.Logf("exp: %s", exp)
		t.Fatalf("Should get back the well known hash of no data.")
	}
}
