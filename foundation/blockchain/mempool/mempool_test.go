package mempool_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestCRUD(t *testing.T) {
	type table struct {
		name string
		txs  []database.Tx
	}

	tt := []table{
		{
			name: "basic",
			txs: []database.Tx{
				{Sender: "bill", Recipient: "ale", Amount: 10},
				{Sender: "ale", Recipient: "pavel", Amount: 0},
				{Sender: "pavel", Recipient: "bill", Amount: 250},
			},
		},
	}

	t.Log("Given the need to validate mempool api.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a set of transaction.", testID)
			{
				mp := mempool.New()

				for i, tx := range tst.txs {
					if n := mp.Add(tx); n != i+1 {
						t.Fatalf("\t%s\tTest %d:\tShould get back the pool size after the add: got %d, exp %d", failed, testID, n, i+1)
					}
				}
				t.Logf("\t%s\tTest %d:\tShould be able to add transactions.", success, testID)

				txs := mp.Copy()
				for i := range tst.txs {
					if txs[i] != tst.txs[i] {
						t.Logf("\t\tTest %d:\tgot: %s", testID, txs[i])
						t.Logf("\t\tTest %d:\texp: %s", testID, tst.txs[i])
						t.Fatalf("\t%s\tTest %d:\tShould get back transactions in submission order.", failed, testID)
					}
				}
				t.Logf("\t%s\tTest %d:\tShould get back transactions in submission order.", success, testID)

				mp.Add(tst.txs[0])
				mp.Truncate()
				if mp.Count() != 0 {
					t.Fatalf("\t%s\tTest %d:\tShould get back an empty pool after a truncate.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get back an empty pool after a truncate.", success, testID)
			}
		}
	}
}

func TestConcurrentAdd(t *testing.T) {
	const g = 50

	mp := mempool.New()

	var wg sync.WaitGroup
	wg.Add(g)
	for i := 0; i < g; i++ {
		go func(i int) {
			defer wg.Done()
			mp.Add(database.Tx{Sender: fmt.Sprintf("s%d", i), Recipient: "r", Amount: uint64(i)})
		}(i)
	}
	wg.Wait()

	if mp.Count() != g {
		t.Fatalf("Should not lose transactions: got %d, exp %d", mp.Count(), g)
	}
}
