package beets

import (
	"errors"
	"testing"
)

func TestErrorText(t *testing.T) {
	cause := errors.New("disk I/O error")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "row names table and column",
			err:  rowError(TableColumn{Table: "items", Column: "path"}, cause),
			want: `failed to get column "path" in table "items"`,
		},
		{
			name: "open names the phase",
			err:  &Error{Kind: KindOpen, Err: cause},
			want: "failed to open database",
		},
		{
			name: "query names the table",
			err:  queryError("albums", cause),
			want: `failed to query table "albums"`,
		},
		{
			name: "query without table",
			err:  &Error{Kind: KindQuery, Err: cause},
			want: "failed to query database",
		},
		{
			name: "unknown is transparent",
			err:  &Error{Kind: KindUnknown, Err: cause},
			want: "disk I/O error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := rowError(TableColumn{Table: "albums", Column: "year"}, cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}
