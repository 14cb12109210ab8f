// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpioperiph

import "testing"

func TestRegisterLookupAndShutdown(t *testing.T) {
	t.Cleanup(Shutdown)
	p := New(KindGSM, "reg-test", "", nil, fakeResolver(nil))
	if err := Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := Register(p); err == nil {
		t.Fatal("expected duplicate Register to fail")
	}
	got, ok := Lookup("reg-test")
	if !ok || got != p {
		t.Fatal("Lookup did not return the registered peripheral")
	}
	Shutdown()
	if _, ok := Lookup("reg-test"); ok {
		t.Fatal("Lookup should fail after Shutdown clears the registry")
	}
}

func TestInitCollectsSetupFailures(t *testing.T) {
	t.Cleanup(Shutdown)
	boom := errorString("setup failed")
	p := New(KindGSM, "init-test", "", nil, fakeResolver(nil))
	p.SetVTable(VTable{Setup: func(*Peripheral) error { return boom }})
	if err := Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}
	failures := Init()
	if len(failures) != 1 || failures[0].Peripheral != p || failures[0].Err != boom {
		t.Fatalf("Init() = %v, want one failure for init-test", failures)
	}
}
