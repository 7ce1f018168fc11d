package vcard_test

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pior/vcard"
	"github.com/pior/vcard/property"
)

func ExampleDecodeString() {
	card, err := vcard.DecodeString("BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Heinrich vom Tosafjord\r\nEND:VCARD\r\n")
	if err != nil {
		panic(err)
	}

	fn, _ := card.FN.GetPreferred()
	fmt.Println(card.Version.Value)
	fmt.Println(fn.Value)
	// Output:
	// 4.0
	// Heinrich vom Tosafjord
}

func ExampleDecoder() {
	input := "BEGIN:VCARD\r\n" +
		"VERSION:4.0\r\n" +
		"EMAIL;PREF=1:work@example.com\r\n" +
		"EMAIL:private@example.com\r\n" +
		"END:VCARD\r\n"

	card, err := vcard.NewDecoder(strings.NewReader(input)).Decode()
	if err != nil {
		panic(err)
	}

	// The lowest preference rank wins, a property without a rank counts
	// as 100
	email, _ := card.Email.GetPreferred()
	fmt.Println(email.Value)
	// Output: work@example.com
}

func ExampleEncoder() {
	card := vcard.NewCard()
	card.FN.Add(&property.FN{Value: "Judith"})
	card.Tel.Add(&property.Tel{Type: []string{"cell"}, Value: "+49123456789"})

	var buf bytes.Buffer
	if err := vcard.NewEncoder(&buf).Encode(card); err != nil {
		panic(err)
	}

	fmt.Println(strings.ReplaceAll(buf.String(), "\r\n", "\n"))
	// Output:
	// BEGIN:VCARD
	// VERSION:4.0
	// FN:Judith
	// TEL;TYPE=cell:+49123456789
	// END:VCARD
}

// Example demonstrating how to collect decoder stats for monitoring
func ExampleDecoder_Stats() {
	input := "BEGIN:VCARD\r\n" +
		"VERSION:4.0\r\n" +
		"FN:Judith\r\n" +
		"X-SKYPE:judith84\r\n" +
		"END:VCARD\r\n"

	dec := vcard.NewDecoder(strings.NewReader(input))
	if _, err := dec.Decode(); err != nil {
		panic(err)
	}

	stats := dec.Stats()
	fmt.Printf("Cards: %d\n", stats.CardsDecoded)
	fmt.Printf("Properties: %d\n", stats.PropertiesDecoded)
	fmt.Printf("Proprietary: %d\n", stats.ProprietaryProperties)
	fmt.Printf("Errors: %d\n", stats.DecodeErrors)
	// Output:
	// Cards: 1
	// Properties: 5
	// Proprietary: 1
	// Errors: 0
}

func ExampleIsSyntaxError() {
	_, err := vcard.DecodeString("BEGIN:VCARD\r\nVERSION:4.0\r\nNOT A PROPERTY\r\nEND:VCARD\r\n")

	fmt.Println(err)
	fmt.Println(vcard.IsSyntaxError(err))
	// Output:
	// invalid content line: no value separator: "NOT A PROPERTY"
	// true
}

// Example demonstrating how to decode a file that holds several cards.
// Decode reads exactly one card, so the stream is chunked at the END:VCARD
// boundaries first.
func Example_multipleCards() {
	stream, err := os.ReadFile("testdata/multi.vcf")
	if err != nil {
		panic(err)
	}

	marker := []byte("END:VCARD\r\n")
	scanner := bufio.NewScanner(bytes.NewReader(stream))
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		if i := bytes.Index(data, marker); i >= 0 {
			return i + len(marker), data[:i+len(marker)], nil
		}
		if atEOF && len(data) > 0 {
			return len(data), data, nil
		}
		return 0, nil, nil
	})

	for scanner.Scan() {
		card, err := vcard.DecodeString(scanner.Text())
		if err != nil {
			panic(err)
		}
		fn, _ := card.FN.GetPreferred()
		fmt.Println(fn.Value)
	}
	// Output:
	// Jane Doe
	// John Doe
}
