package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/velem/pkg/decode"
	"github.com/vango-dev/velem/pkg/dom"
	"github.com/vango-dev/velem/pkg/vdom"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "mount error",
			code:    "E100",
			wantMsg: "Invalid element kind",
			wantCat: CategoryMount,
		},
		{
			name:    "decode error",
			code:    "E111",
			wantMsg: "Unknown event handler",
			wantCat: CategoryDecode,
		},
		{
			name:    "config error",
			code:    "E121",
			wantMsg: "Configuration file not found",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryPublish, "key %q rejected", "../x")
	if err.Message != `key "../x" rejected` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Code != "" || err.Category != CategoryPublish {
		t.Errorf("got code %q category %q", err.Code, err.Category)
	}
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantPath string
	}{
		{"invalid kind", &vdom.InvalidKindError{Reason: "kind is required"}, "E100", ""},
		{"unsupported kind", &vdom.UnsupportedKindError{Kind: vdom.HostTag("x")}, "E101", ""},
		{"invalid child", &vdom.InvalidChildError{Path: "[0][1]", Reason: "nested"}, "E102", "children[0][1]"},
		{"invalid prop", &vdom.InvalidPropError{Key: "onClick"}, "E103", ""},
		{"invalid attribute name", &dom.InvalidNameError{Kind: "attribute", Name: "a b"}, "E103", ""},
		{"unknown handler", &decode.Error{Path: "props.onClick", Err: fmt.Errorf("%w: x", decode.ErrUnknownHandler)}, "E111", "props.onClick"},
		{"missing kind", &decode.Error{Path: "children[2]", Err: decode.ErrMissingKind}, "E112", "children[2]"},
		{"bad child", &decode.Error{Err: decode.ErrBadChild}, "E113", ""},
		{"other decode", &decode.Error{Err: stderrors.New("parse json")}, "E110", ""},
		{"wrapped kind inside decode", &decode.Error{Path: "children[0]", Err: &vdom.InvalidKindError{}}, "E100", "children[0]"},
		{"plain", stderrors.New("boom"), "E000", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := FromError(tt.err)
			if e.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", e.Code, tt.wantCode)
			}
			if got := e.Location.String(); got != tt.wantPath {
				t.Errorf("Location = %q, want %q", got, tt.wantPath)
			}
			if !stderrors.Is(e, tt.err) {
				t.Error("FromError must keep the original error in the chain")
			}
		})
	}

	if FromError(nil) != nil {
		t.Error("FromError(nil) should be nil")
	}

	orig := New("E130")
	if FromError(fmt.Errorf("publish: %w", orig)) != orig {
		t.Error("an existing *Error should be returned unchanged")
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("load: %w", New("E121"))
	if !Is(err, "E121") {
		t.Error("Is should find the code through wrapping")
	}
	if Is(err, "E120") {
		t.Error("Is matched the wrong code")
	}
	if Is(stderrors.New("plain"), "E000") {
		t.Error("plain errors carry no code")
	}
}

func TestErrorString(t *testing.T) {
	err := New("E130").Wrap(stderrors.New("disk full"))
	if got := err.Error(); got != "E130: Publishing failed: disk full" {
		t.Errorf("Error() = %q", got)
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		loc  *Location
		want string
	}{
		{nil, ""},
		{&Location{File: "a.yaml"}, "a.yaml"},
		{&Location{Path: "props.x"}, "props.x"},
		{&Location{File: "a.yaml", Path: "props.x"}, "a.yaml: props.x"},
	}
	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBuilders(t *testing.T) {
	err := New("E102").WithFile("page.yaml").WithPath("children[1]").WithSuggestion("flatten").WithDetail("why")

	if err.Location.File != "page.yaml" || err.Location.Path != "children[1]" {
		t.Errorf("Location = %+v", err.Location)
	}
	if err.Suggestion != "flatten" || err.Detail != "why" {
		t.Errorf("Suggestion = %q, Detail = %q", err.Suggestion, err.Detail)
	}
	if New("E102").WithPath("").Location != nil {
		t.Error("an empty path should not create a location")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E102").WithFile("page.yaml").WithPath("children[0]").Wrap(stderrors.New("nested sequence"))
	out := err.Format()

	for _, want := range []string{
		"ERROR E102: Invalid child",
		"page.yaml: children[0]",
		"nested sequence",
		"Hint: Flatten nested lists before mounting.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() should contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Format() should not emit escape codes with colors disabled")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E112").WithPath("children[2]")
	if got := err.FormatCompact(); got != "children[2]: E112: Missing element kind" {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E111").WithPath("props.onClick").Wrap(stderrors.New("unknown handler"))

	var got map[string]string
	if e := json.Unmarshal([]byte(err.FormatJSON()), &got); e != nil {
		t.Fatalf("invalid JSON: %v", e)
	}
	if got["code"] != "E111" || got["location"] != "props.onClick" || got["cause"] != "unknown handler" {
		t.Errorf("unexpected JSON: %v", got)
	}
	if got["category"] != "decode" {
		t.Errorf("category = %q", got["category"])
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("aaa bbb ccc ddd", 7)
	if len(lines) != 2 || lines[0] != "aaa bbb" || lines[1] != "ccc ddd" {
		t.Errorf("wrapText = %q", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("empty text should produce no lines")
	}
}

func TestLookup(t *testing.T) {
	for _, code := range []string{"E000", "E100", "E101", "E102", "E103", "E110", "E111", "E112", "E113", "E120", "E121", "E130", "E140"} {
		if _, ok := Lookup(code); !ok {
			t.Errorf("code %s is not registered", code)
		}
	}
}
