// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package idl

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pinorobotics/msgmonster/internal/errors"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		dialect Dialect
		token   string
		want    TypeRef
	}{
		{ROS1, "float64", TypeRef{Token: "float64", Base: "float64", Kind: KindPrimitive}},
		{ROS1, "float64[3]", TypeRef{Token: "float64[3]", Base: "float64", Kind: KindPrimitive, Array: true, Size: 3}},
		{ROS1, "float64[]", TypeRef{Token: "float64[]", Base: "float64", Kind: KindPrimitive, Array: true}},
		{ROS1, "string", TypeRef{Token: "string", Base: "string", Kind: KindBasic}},
		{ROS1, "time", TypeRef{Token: "time", Base: "time", Kind: KindBasic}},
		{ROS2, "time", TypeRef{Token: "time", Base: "time", Kind: KindUnknown}},
		{ROS2, "wstring", TypeRef{Token: "wstring", Base: "wstring", Kind: KindBasic}},
		{ROS2, "string<=10", TypeRef{Token: "string<=10", Base: "string", Kind: KindBasic}},
		{ROS2, "int32[<=5]", TypeRef{Token: "int32[<=5]", Base: "int32", Kind: KindPrimitive, Array: true, Bound: 5}},
		{ROS1, "geometry_msgs/Point", TypeRef{Token: "geometry_msgs/Point", Package: "geometry_msgs", Base: "Point", Kind: KindForeign}},
		{ROS2, "geometry_msgs/msg/Point[]", TypeRef{Token: "geometry_msgs/msg/Point[]", Package: "geometry_msgs", Base: "Point", Kind: KindForeign, Array: true}},
		{ROS1, "Header", TypeRef{Token: "Header", Package: "std_msgs", Base: "Header", Kind: KindStdMsg}},
		{ROS1, "ColorRGBA[2]", TypeRef{Token: "ColorRGBA[2]", Package: "std_msgs", Base: "ColorRGBA", Kind: KindStdMsg, Array: true, Size: 2}},
		{ROS1, "JointState", TypeRef{Token: "JointState", Base: "JointState", Kind: KindUnknown}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect)+"/"+tt.token, func(t *testing.T) {
			got := ParseType(tt.dialect, tt.token)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseType(%s, %q) mismatch (-want +got):\n%s", tt.dialect, tt.token, diff)
			}
		})
	}
}

func TestParseTypeIsPure(t *testing.T) {
	for _, token := range []string{"uint8[16]", "Header", "pkg/Type[]", "mystery"} {
		a, b := ParseType(ROS1, token), ParseType(ROS1, token)
		if a != b {
			t.Errorf("ParseType(%q) not stable: %+v vs %+v", token, a, b)
		}
	}
}

func TestTypeRefShape(t *testing.T) {
	fixed := ParseType(ROS1, "float64[3]")
	if !fixed.IsArray() || !fixed.IsFixedArray() {
		t.Errorf("float64[3]: IsArray=%v IsFixedArray=%v, want both true", fixed.IsArray(), fixed.IsFixedArray())
	}
	dynamic := ParseType(ROS1, "float64[]")
	if !dynamic.IsArray() || dynamic.IsFixedArray() {
		t.Errorf("float64[]: IsArray=%v IsFixedArray=%v, want true, false", dynamic.IsArray(), dynamic.IsFixedArray())
	}
	if got := ParseType(ROS1, "Header").FullName(); got != "std_msgs/Header" {
		t.Errorf("FullName() = %q, want %q", got, "std_msgs/Header")
	}
	if !ParseType(ROS1, "JointState").IsMessage() {
		t.Error("JointState should be a message reference")
	}
	if ParseType(ROS1, "string").IsMessage() {
		t.Error("string should not be a message reference")
	}
}

func TestParseDialect(t *testing.T) {
	for _, s := range []string{"ros1", "ROS2", " ros1 "} {
		if _, err := ParseDialect(s); err != nil {
			t.Errorf("ParseDialect(%q) error: %v", s, err)
		}
	}
	_, err := ParseDialect("ros3")
	if !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("ParseDialect(ros3) error = %v, want ErrUnsupported", err)
	}
	if diff := cmp.Diff([]string{"supported dialects: ros1, ros2"}, errors.GetAllHints(err)); diff != "" {
		t.Errorf("hints mismatch (-want +got):\n%s", diff)
	}
	if !ROS1.HasChecksum() || ROS2.HasChecksum() {
		t.Error("only ros1 has a content checksum")
	}
}

func TestDependency(t *testing.T) {
	tests := []struct {
		token  string
		want   string
		wantOK bool
	}{
		{"geometry_msgs/Point[]", "geometry_msgs/Point", true},
		{"Header", "std_msgs/Header", true},
		{"JointState", "my_msgs/JointState", true},
		{"float64[3]", "", false},
		{"string", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseType(ROS1, tt.token).Dependency("my_msgs")
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Dependency(%q) = %q, %v, want %q, %v", tt.token, got, ok, tt.want, tt.wantOK)
		}
	}
}
