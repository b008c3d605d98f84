package request

import (
	"errors"
	"net/url"
	"testing"
)

type Params struct {
	Arg1 int    `param:"arg1"`
	Arg2 string `param:"arg2"`
	Arg3 bool   `param:"arg3"`
}

type RequiredParams struct {
	ID    int64  `json:"id"`
	Title string `param:"title,required"`
	Year  string `param:"year,required"`
}

func TestMarshallParams(t *testing.T) {

	tUrl, err := url.Parse("example.com?arg1=1&arg2=hello_world&arg3=true")
	if err != nil {
		t.Fatalf("unable to parse url Query: %s", err.Error())
	}

	tUrl2, err := url.Parse("example.com?arg1=hello&arg")
	if err != nil {
		t.Fatalf("unable to parse url Query: %s", err.Error())
	}

	tests := []struct {
		name string // description of this test case
		// Named input parameters for target function.
		urlValues url.Values
		dest      Params
		want      Params
		wantErr   bool
	}{
		{
			name:      "simple-url-no-error-expected",
			urlValues: tUrl.Query(),
			want:      Params{Arg1: 1, Arg2: "hello_world", Arg3: true},
			wantErr:   false,
		},
		{
			name:      "url-params-not-correct-type",
			urlValues: tUrl2.Query(),
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr := MarshallParams(tt.urlValues, &tt.dest)
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("MarshallParams() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Log(tt.dest)
				t.Fatal("MarshallParams() succeeded unexpectedly")
			}
			if tt.dest != tt.want {
				t.Errorf("expected %+v, but got: %+v", tt.want, tt.dest)
			}
		})
	}
}

func TestMarshallParamsRequired(t *testing.T) {
	dest := RequiredParams{}
	err := MarshallParams(url.Values{"title": {"1984"}}, &dest)
	if !errors.Is(err, ErrMissingParam) {
		t.Fatalf("expected %v, but got: %v", ErrMissingParam, err)
	}

	dest = RequiredParams{}
	err = MarshallParams(url.Values{"title": {"1984"}, "year": {""}, "id": {"5"}}, &dest)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if dest.Title != "1984" || dest.Year != "" || dest.ID != 0 {
		t.Errorf("unexpected result, untagged fields must stay untouched: %+v", dest)
	}
}

func TestUnMarshallParams(t *testing.T) {
	values := UnMarshallParams(&Params{Arg1: 3, Arg2: "x", Arg3: true})
	if values.Get("arg1") != "3" || values.Get("arg2") != "x" || values.Get("arg3") != "true" {
		t.Errorf("unexpected values: %v", values)
	}

	var anyParams any = RequiredParams{Title: "Dune", Year: "1965"}
	values = UnMarshallParams(&anyParams)
	if values.Get("title") != "Dune" || values.Get("year") != "1965" || values.Has("id") {
		t.Errorf("unexpected values: %v", values)
	}
}
