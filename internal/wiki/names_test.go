package wiki

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"My Title", "My-Title"},
		{"Conceptual Level: Behaviour", "Conceptual-Level%3A-Behaviour"},
		{"Non-Functional Requirements", "Non%2DFunctional-Requirements"},
		{"Plain", "Plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.name); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"My-Title", "My Title"},
		{"Conceptual-Level%3A-Behaviour", "Conceptual Level: Behaviour"},
		{"Non%2DFunctional-Requirements", "Non-Functional Requirements"},
		{"Bad%ZZescape", "Bad%ZZescape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.name); got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	names := []string{
		"Conceptual Level: Behaviour",
		"Non-Functional Requirements",
		"A - B: C 123",
		"trailing-hyphen-",
	}
	for _, name := range names {
		if got := Decode(Encode(name)); got != name {
			t.Errorf("Decode(Encode(%q)) = %q", name, got)
		}
	}
}

func TestFixupPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{`C:\Sample.wiki\S2-Foo\S3: Bar`, `C:\Sample.wiki\S2%2DFoo\S3%3A-Bar`},
		{"/home/wiki/Sample.wiki/My Section", "/home/wiki/Sample.wiki/My-Section"},
		{"/data/100% done", "/data/100%-done"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FixupPath(Encode(tt.path)); got != tt.want {
				t.Errorf("FixupPath(Encode(%q)) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestFixupPath_NoDrive(t *testing.T) {
	// A colon further into the value is left encoded.
	if got := FixupPath("ab%3Ac"); got != "ab%3Ac" {
		t.Errorf("FixupPath() = %q, want %q", got, "ab%3Ac")
	}
}

func TestIsAppendix(t *testing.T) {
	tests := []struct {
		name        string
		appendix    bool
		appendixSec bool
	}{
		{"Appendix A: Bibliography", true, false},
		{"appendix-b", true, false},
		{"APPENDICES", false, true},
		{"Appendices", false, true},
		{"My Appendix", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAppendix(tt.name); got != tt.appendix {
				t.Errorf("IsAppendix(%q) = %v, want %v", tt.name, got, tt.appendix)
			}
			if got := IsAppendixSection(tt.name); got != tt.appendixSec {
				t.Errorf("IsAppendixSection(%q) = %v, want %v", tt.name, got, tt.appendixSec)
			}
		})
	}
}

func TestAppendixName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"My Title", "My Title"},
		{"Appendix Bibliography", "Bibliography"},
		{"Appendix: Bibliography", "Bibliography"},
		{"Appendix - Bibliography", "Bibliography"},
		{"Appendix A: Bibliography", "Bibliography"},
		{"Appendix 1 - 2: Glossary", "Glossary"},
		{"Appendix AB: Notes", "AB: Notes"},
		{"Appendix A", "Appendix A"},
		{"Appendix A: B", "Appendix A: B"},
		{"Appendix é", "Appendix é"},
		{"Appendix", "Appendix"},
		{"Appendix - ", "Appendix - "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppendixName(tt.name); got != tt.want {
				t.Errorf("AppendixName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
