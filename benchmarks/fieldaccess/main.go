// Command fieldaccess compares struct field access paths, from direct
// reads down to reflection.
package main

import (
	"os"
	"reflect"

	"github.com/benchvs/benchvs/internal/bench"
)

type account struct {
	Balance int64
	Owner   string
}

//go:noinline
func (a *account) GetBalance() int64 {
	return a.Balance
}

type balancer interface {
	GetBalance() int64
}

func main() {
	accesses := bench.Param("BENCHVS_ACCESSES", 10000000)

	acct := &account{Balance: 100, Owner: "holder"}
	var iface balancer = acct

	asMap := map[string]int64{"balance": 100}

	v := reflect.ValueOf(acct).Elem()
	balanceIdx := 0 // field index resolved once

	b := bench.New("Field Access")
	b.Note("accesses = %d", accesses)

	var sums [6]int64

	b.Measure("direct field read", accesses, func() {
		sums[0] += acct.Balance
	})

	b.Measure("getter method", accesses, func() {
		sums[1] += acct.GetBalance()
	})

	b.Measure("interface method", accesses, func() {
		sums[2] += iface.GetBalance()
	})

	b.Measure("map[string]int64 lookup", accesses, func() {
		sums[3] += asMap["balance"]
	})

	b.Measure("reflect FieldByName", accesses, func() {
		sums[4] += v.FieldByName("Balance").Int()
	})

	b.Measure("reflect Field(i), index cached", accesses, func() {
		sums[5] += v.Field(balanceIdx).Int()
	})

	for i := 1; i < len(sums); i++ {
		if sums[i] != sums[0] {
			bench.Fatalf("sum mismatch: approach %d got %d, want %d",
				i, sums[i], sums[0])
		}
	}

	bench.Sink = sums

	b.Guide(
		"direct reads compile to a single load; getters match once inlined",
		"FieldByName does a string search per access; resolve the index once if reflection is unavoidable",
		"a map is not a cheap struct; it trades a load for hashing",
	)
	b.Print(os.Stdout)
}
