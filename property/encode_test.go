package property

import (
	"testing"

	"github.com/pior/vcard/contentline"
	"github.com/stretchr/testify/require"
)

func TestAppendProperty(t *testing.T) {
	tests := []struct {
		name string
		prop Property
		want string
	}{
		{
			name: "begin",
			prop: &Begin{Value: "VCARD"},
			want: "BEGIN:VCARD\r\n",
		},
		{
			name: "version",
			prop: &Version{Value: Version4},
			want: "VERSION:4.0\r\n",
		},
		{
			name: "empty n",
			prop: &N{},
			want: "N:;;;;\r\n",
		},
		{
			name: "n with sort strings",
			prop: &N{SortAs: []string{"foo", "bar"}},
			want: "N;SORT-AS=\"foo,bar\":;;;;\r\n",
		},
		{
			name: "n with names",
			prop: &N{
				SortAs:     []string{"foo", "bar"},
				Surnames:   []string{"Vom Tosafjord"},
				GivenNames: []string{"Heinrich"},
			},
			want: "N;SORT-AS=\"foo,bar\":Vom Tosafjord;Heinrich;;;\r\n",
		},
		{
			name: "n escapes items",
			prop: &N{
				Surnames:          []string{"Stevenson"},
				GivenNames:        []string{"John"},
				AdditionalNames:   []string{"Philip", "Paul"},
				HonorificSuffixes: []string{"Jr.,M.D."},
			},
			want: `N:Stevenson;John;Philip,Paul;;Jr.\,M.D.` + "\r\n",
		},
		{
			name: "empty email",
			prop: &Email{},
			want: "EMAIL:\r\n",
		},
		{
			name: "email with group",
			prop: &Email{Group: "foo", Value: "jdoe@example.com"},
			want: "foo.EMAIL:jdoe@example.com\r\n",
		},
		{
			name: "email parameter order",
			prop: &Email{
				AltID: "1",
				PID:   &PID{First: 2},
				Pref:  u8(1),
				Type:  []string{"work"},
				Value: "j@example.com",
			},
			want: "EMAIL;ALTID=1;PID=2;PREF=1;TYPE=work:j@example.com\r\n",
		},
		{
			name: "fn parameter order",
			prop: &FN{
				AltID:     "1",
				ValueType: ValueTypeText,
				Type:      []string{"work"},
				Language:  "en",
				Pref:      u8(1),
				Value:     "Jane",
			},
			want: "FN;ALTID=1;VALUE=text;TYPE=work;LANGUAGE=en;PREF=1:Jane\r\n",
		},
		{
			name: "type emits one parameter per item",
			prop: &Tel{Type: []string{"home", "voice"}, Value: "+1"},
			want: "TEL;TYPE=home;TYPE=voice:+1\r\n",
		},
		{
			name: "tel parameter order",
			prop: &Tel{
				ValueType: ValueTypeURI,
				Type:      []string{"voice"},
				PID:       &PID{First: 1, Second: 2, HasSecond: true},
				Pref:      u8(3),
				AltID:     "a",
				Value:     "tel:+1-555",
			},
			want: "TEL;VALUE=uri;TYPE=voice;PID=1.2;PREF=3;ALTID=a:tel:+1-555\r\n",
		},
		{
			name: "pref zero still written",
			prop: &Tel{Pref: u8(0), Value: "+1"},
			want: "TEL;PREF=0:+1\r\n",
		},
		{
			name: "adr",
			prop: &Adr{
				Label:      "Home",
				TimeZone:   "UTC",
				Type:       []string{"home"},
				Street:     []string{"123 Main Street"},
				City:       []string{"Any Town"},
				Region:     []string{"CA"},
				PostalCode: []string{"91921"},
			},
			want: "ADR;LABEL=Home;TZ=UTC;TYPE=home:;;123 Main Street;Any Town;CA;91921;\r\n",
		},
		{
			name: "gender",
			prop: &Gender{Sex: SexMale, Identity: strp("boss")},
			want: "GENDER:m;boss\r\n",
		},
		{
			name: "gender without identity",
			prop: &Gender{Sex: SexOther},
			want: "GENDER:o\r\n",
		},
		{
			name: "gender without sex",
			prop: &Gender{Identity: strp("fluid")},
			want: "GENDER:;fluid\r\n",
		},
		{
			name: "kind",
			prop: &Kind{Value: KindGroup},
			want: "KIND:group\r\n",
		},
		{
			name: "org joins units with semicolons",
			prop: &Org{Value: []string{"ABC, Inc.", "North American Division", "Marketing"}},
			want: `ORG:ABC\, Inc.;North American Division;Marketing` + "\r\n",
		},
		{
			name: "nickname list",
			prop: &Nickname{Value: []string{"Jim", "Jimmie"}},
			want: "NICKNAME:Jim,Jimmie\r\n",
		},
		{
			name: "categories",
			prop: &Categories{Value: []string{"TRAVEL AGENT", "INTERNET"}},
			want: "CATEGORIES:TRAVEL AGENT,INTERNET\r\n",
		},
		{
			name: "source",
			prop: &Source{
				PID:   &PID{First: 3},
				AltID: "1",
				Value: MustURI("ldap://ldap.example.com/cn=Babs"),
			},
			want: "SOURCE;PID=3;ALTID=1:ldap://ldap.example.com/cn=Babs\r\n",
		},
		{
			name: "clientpidmap keeps the source number",
			prop: &ClientPIDMap{SourceID: 2, Value: MustURI("urn:uuid:d89c9c7a-2e1b-4832-82de-7e992d95faa5")},
			want: "CLIENTPIDMAP:2;urn:uuid:d89c9c7a-2e1b-4832-82de-7e992d95faa5\r\n",
		},
		{
			name: "uid",
			prop: &UID{ValueType: ValueTypeURI, Value: "urn:uuid:f81d4fae-7dec-11d0-a765-00a0c91e6bf6"},
			want: "UID;VALUE=uri:urn:uuid:f81d4fae-7dec-11d0-a765-00a0c91e6bf6\r\n",
		},
		{
			name: "url with mediatype",
			prop: &URL{MediaType: "text/html", Value: MustURI("https://example.org/")},
			want: "URL;MEDIATYPE=text/html:https://example.org/\r\n",
		},
		{
			name: "proprietary",
			prop: &Proprietary{
				Group: "item2",
				Name:  "X-ABC",
				Value: "val",
				Params: []Parameter{
					{Kind: ParamProprietary, Text: "X-FIRST=1"},
					{Kind: ParamType, List: []string{"home"}},
				},
			},
			want: "item2.X-ABC;X-FIRST=1;TYPE=home:val\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(AppendProperty(nil, tt.prop))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAppendProperty_ExtendsDst(t *testing.T) {
	buf := AppendProperty([]byte("BEGIN:VCARD\r\n"), &FN{Value: "John"})
	require.Equal(t, "BEGIN:VCARD\r\nFN:John\r\n", string(buf))
}

// Decoding a canonical line and writing it back yields the same bytes.
func TestPropertyRoundTrip(t *testing.T) {
	lines := []string{
		"FN;ALTID=1;VALUE=text;TYPE=work;LANGUAGE=en;PREF=1:Jane Doe",
		"N;ALTID=2;LANGUAGE=en;SORT-AS=\"Stevenson,John\":Stevenson;John;Philip,Paul;Dr.;Jr.\\,M.D.",
		"contact.N:Doe;Jane;;;",
		"NICKNAME:Jim,Jimmie",
		"GENDER:m;boss",
		"ADR;LABEL=Home;TZ=UTC;PID=1;PREF=2;TYPE=home:;;123 Main Street;Any Town;CA;91921;",
		"TEL;VALUE=uri;TYPE=voice;PREF=1:tel:+1-555-555-5555",
		"item1.EMAIL;TYPE=work:jqpublic@xyz.example.com",
		"IMPP;PREF=1:xmpp:alice@example.com",
		"ORG:ABC\\, Inc.;North American Division;Marketing",
		"MEMBER;MEDIATYPE=text/plain:mailto:subscriber1@example.com",
		"CATEGORIES:TRAVEL AGENT,INTERNET",
		"NOTE;LANGUAGE=en:Operational 0800 to 1715 EST",
		"PRODID:-//ONLINE DIRECTORY//NONSGML Version 1//EN",
		"REV:19951031T222710Z",
		"UID;VALUE=uri:urn:uuid:f81d4fae-7dec-11d0-a765-00a0c91e6bf6",
		"CLIENTPIDMAP:1;urn:uuid:3df403f4-5924-4bb7-b077-3c711d9eb34b",
		"URL;MEDIATYPE=text/html:https://example.org/",
		"X-QQ;X-A=1;TYPE=home:12345",
	}

	for _, line := range lines {
		tokenized, err := contentline.Parse(line)
		require.NoError(t, err, line)

		prop, err := Decode(tokenized)
		require.NoError(t, err, line)

		require.Equal(t, line+"\r\n", string(AppendProperty(nil, prop)), line)
	}
}
