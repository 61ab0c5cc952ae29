/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package caseloader

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// The conformance schema is registered at runtime from the descriptor below,
// so suites need no generated code and no .proto compilation step:
//
//	syntax = "proto3";
//	package logismos.cases;
//
//	message Suite {
//	  string name = 1;
//	  repeated Case case = 2;
//	}
//
//	message Case {
//	  string name = 1;
//	  string source = 2;
//	  string want_value = 3;     // rendered result, when evaluation succeeds
//	  Failure want_failure = 4;  // expected error, when the pipeline fails
//	  string want_lisp = 5;
//	  string want_polish = 6;
//	  string want_rpn = 7;
//	}
//
//	message Failure {
//	  string kind = 1;     // syntax, parse or runtime
//	  string message = 2;  // matched as a substring
//	  uint32 line = 3;     // 0 skips the position check
//	  uint32 column = 4;
//	}

const (
	schemaPath       = "logismos/cases.proto"
	schemaPackage    = "logismos.cases"
	suiteMessageName = "logismos.cases.Suite"
)

// NewRegistry builds a registry holding the conformance schema.
func NewRegistry() (*protoregistry.Files, error) {
	fd, err := protodesc.NewFile(casesFileDescriptor(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build cases schema: %w", err)
	}
	registry := new(protoregistry.Files)
	if err := registry.RegisterFile(fd); err != nil {
		return nil, fmt.Errorf("failed to register cases schema: %w", err)
	}
	return registry, nil
}

func casesFileDescriptor() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(schemaPath),
		Package: proto.String(schemaPackage),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("Suite"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("name", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					repeatedMessageField("case", 2, ".logismos.cases.Case"),
				},
			},
			{
				Name: proto.String("Case"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("name", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalarField("source", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalarField("want_value", 3, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					messageField("want_failure", 4, ".logismos.cases.Failure"),
					scalarField("want_lisp", 5, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalarField("want_polish", 6, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalarField("want_rpn", 7, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				},
			},
			{
				Name: proto.String("Failure"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("kind", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalarField("message", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalarField("line", 3, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
					scalarField("column", 4, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				},
			},
		},
	}
}

func scalarField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func messageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
		TypeName: proto.String(typeName),
	}
}

func repeatedMessageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	field := messageField(name, number, typeName)
	field.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return field
}
