package main

import (
	"reflect"
	"testing"
)

func TestParseFolderRange(t *testing.T) {
	tests := []struct {
		arg     string
		want    []int
		wantErr bool
	}{
		{arg: "7", want: []int{7}},
		{arg: "03", want: []int{3}},
		{arg: "3-6", want: []int{3, 4, 5, 6}},
		{arg: "5-5", want: []int{5}},
		{arg: " 2-4 ", want: []int{2, 3, 4}},
		{arg: "", wantErr: true},
		{arg: "abc", wantErr: true},
		{arg: "0", wantErr: true},
		{arg: "6-3", wantErr: true},
		{arg: "3-", wantErr: true},
		{arg: "-3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseFolderRange(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseFolderRange(%q) succeeded, want error", tt.arg)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFolderRange(%q) = %v", tt.arg, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFolderRange(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}
