package gpt

import (
	"testing"
)

func TestAttributeBits(t *testing.T) {
	var attributes Attributes = 1 // Required-partition bit must survive.
	attributes = attributes.WithPriority(3).WithTries(1).WithSuccessful(true)
	if want := Attributes(1 | 3<<48 | 1<<52 | 1<<56); attributes != want {
		t.Fatalf("attributes: 0x%x != 0x%x", uint64(attributes), uint64(want))
	}
	if attributes.Priority() != 3 {
		t.Errorf("priority: %d", attributes.Priority())
	}
	if attributes.Tries() != 1 {
		t.Errorf("tries: %d", attributes.Tries())
	}
	if !attributes.Successful() {
		t.Error("not successful")
	}
	attributes = attributes.WithSuccessful(false).WithTries(0)
	if attributes != Attributes(1|3<<48) {
		t.Fatalf("attributes: 0x%x", uint64(attributes))
	}
}

func TestAttributeClamping(t *testing.T) {
	attributes := Attributes(0).WithPriority(99).WithTries(16)
	if attributes.Priority() != MaxPriority {
		t.Errorf("priority: %d", attributes.Priority())
	}
	if attributes.Tries() != MaxTries {
		t.Errorf("tries: %d", attributes.Tries())
	}
	if attributes.Successful() {
		t.Error("successful bit set by neighbouring fields")
	}
}

func TestNormaliseGUID(t *testing.T) {
	guid, err := NormaliseGUID("{FE3A2A5D-4F32-41A7-B725-ACCC3285A309}")
	if err != nil {
		t.Fatal(err)
	}
	if guid != "fe3a2a5d-4f32-41a7-b725-accc3285a309" {
		t.Errorf("guid: %s", guid)
	}
	if _, err := NormaliseGUID("not-a-guid"); err == nil {
		t.Error("bogus GUID accepted")
	}
}
