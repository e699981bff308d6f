// Package vectors holds recorded chain values used to check every backend and
// lane width before trusting it.
package vectors

import (
	"fmt"

	hex "github.com/tmthrgd/go-hex"

	"github.com/zeebo/rsha256/internal/consts"
)

// Lanes is the number of distinct seeds, one per lane of the widest call.
const Lanes = consts.MaxLanes

// Iterations are the chain lengths recorded for every lane.
var Iterations = [...]uint64{0, 1, 10e6, 50e6, 100e6, 200e6, 500e6}

var table = [Lanes][len(Iterations)]string{
	{
		"2EFD64A55463B5B554C4A2E22A472DA23BB76E63758CE3C89276ABF0E9AD8B15",
		"77461D8ED8A2206F82366618D363BAA2FFDD991B5D2D80986DBCF82F58A4F3F3",
		"85DE676493DB941BAC9F89B329327AF2433621800718EBB5D7926BD4F5FFED97",
		"067D78D950044F002B4CC9896EDE9CE05A5CA9FA4A0F6E69BE188E6C95616CED",
		"6D9B4C4990282BF046C9657B32CD99EC1435166AEE6B4C233CBEAC1F285A65AA",
		"05905DA958D9FC7852AE954AF9F131B95A1FA407186E9B687DE57D49D4055BF1",
		"49C053E8C3826477FA52B77DE203ED9DE0D1CE045DA01A45C056E3653F9F729E",
	},
	{
		"73E5C1F5367E1FAD7D42AAACAA295F107FB9E2C6341701126B1D64BBCB178DA3",
		"907C06BE9B50777527CACF8579C60F5DEB31C97A01E756D7E9903E8E07B1E655",
		"9178DD1524B778B61FA598667E11AD23C8BD1C03610036E01EE167A94BC7DFFF",
		"165110606C925C799EE01AB8ACF06C3F06839944D4F432A6208D75393F0BFB7B",
		"57C55A3FA027C30B0EC9768228143B8A62F5340B7AB6E61CCF5EFE87A6A9275D",
		"5C46152CCA2C713A466B05B45734EE69C524DF45FD02CA75EC79EFD4D8382E03",
		"74C94027180D0677A2A7155E33ED3F3B73415B92FFBB33797F75C18447651F86",
	},
	{
		"052751686210A1DACE862D474146A003696E9721DAA837D92B200BC1DB9F14EF",
		"285AF96FD451B54592B1B0F7AFD9F48B0993F430DCD8B4E6DD76AD1C472D3DB9",
		"B34DAACCC6A18C230AB5AA74B5D81DF3AD23D48723B31C14D1CCB7B1D1E731A4",
		"610E1EB2BF7691CC83C88E055F2C449DB59A12FB0300DBE5C91934C3F37A4ED6",
		"B83A64D1FA9670F5F33A2005A344527B4B653AB8052D4EEF3506C6D614C8DF44",
		"32DE0D8502D987527D00E65C7035DE38F271BC85F84369A018255B4B2E1FD9DB",
		"56B2417E4DD4BB2D831DB51D30B583A37F1F8CA607EFFF5B0461EC9876440DEE",
	},
	{
		"CA6A0779CDA9E10E39905A785D428D6E3ECE262753A6402AB9363B84CF736F60",
		"E51ADADAC9C6D934D05B0ED004B4107FC2961C997F622A15CA8B55B05FA58B60",
		"B33FA171B28BE69F3CBDC17CD7F1723E203B85CDECB2A690E461107DF5EE3E04",
		"17B6938D556ECF28BE1A6789BE964D72BFE7FBCCA9578A4222CD0A61B6348A4A",
		"62D3E9AF03CC7C268E26F3C339630EF53A7172687BD1766BE119EA53E23BAB99",
		"28C256A44289BF7DB0644B90266E99313447902868B51099C40F4C31C12891A4",
		"54BC9F8BE4502171187C2F06834ECDB8A6FABD1143B6F24B7AEBD70890855ADD",
	},
}

var values = func() (values [Lanes][len(Iterations)][consts.Size]byte) {
	for l := range table {
		for i, s := range table[l] {
			if n, err := hex.Decode(values[l][i][:], []byte(s)); err != nil || n != consts.Size {
				panic(fmt.Sprintf("vectors: bad entry %d/%d: %v", l, i, err))
			}
		}
	}
	return values
}()

// Seed returns the starting value of lane.
func Seed(lane int) [consts.Size]byte { return values[lane][0] }

// Lookup returns the value of lane after n iterations from its seed, if one
// is recorded.
func Lookup(lane int, n uint64) ([consts.Size]byte, bool) {
	for i, it := range Iterations {
		if it == n {
			return values[lane][i], true
		}
	}
	return [consts.Size]byte{}, false
}

// Seeds returns the seeds of the first lanes lanes packed back to back, the
// layout the pipelined calls take.
func Seeds(lanes int) []byte {
	buf := make([]byte, 0, lanes*consts.Size)
	for l := 0; l < lanes; l++ {
		buf = append(buf, values[l][0][:]...)
	}
	return buf
}

// Check reports whether buf, holding lanes packed back to back, matches the
// recorded value after n iterations in every lane.
func Check(buf []byte, n uint64) bool {
	lanes := len(buf) / consts.Size
	if lanes < 1 || lanes > Lanes || len(buf)%consts.Size != 0 {
		return false
	}
	for l := 0; l < lanes; l++ {
		exp, ok := Lookup(l, n)
		if !ok || string(exp[:]) != string(buf[consts.Size*l:consts.Size*(l+1)]) {
			return false
		}
	}
	return true
}
