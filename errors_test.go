// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/plist"
)

func TestContentError_messageIncludesOffendingByte(t *testing.T) {
	_, err := plist.DecodeString("%")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "0x25") {
		t.Errorf("error %q should report the offending byte 0x25", err.Error())
	}
}

func TestContentError_octalDigitsInMessage(t *testing.T) {
	_, err := plist.DecodeString(`"\400"`)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "400") {
		t.Errorf("error %q should mention the octal digits 400", err.Error())
	}
}

func TestContentError_nonUTF8StringContents(t *testing.T) {
	_, err := plist.DecodeString("\"\xc0\x80\"")
	var de *plist.DecodingError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DecodingError", err)
	}
	if de.Err.Kind != plist.ErrNonUTF8StringContents {
		t.Errorf("kind = %v, want ErrNonUTF8StringContents", de.Err.Kind)
	}
}

func TestErrorKind_String(t *testing.T) {
	if got := plist.ErrMissingContent.String(); got != "missingContent" {
		t.Errorf("ErrMissingContent.String() = %q, want missingContent", got)
	}
}
