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

// Package caseloader loads language conformance suites from textproto files
// with dynamic schema discovery. The suite schema is registered at runtime,
// so the corpus is plain data: no generated protobuf code is involved.
package caseloader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Suite is a named group of conformance cases.
type Suite struct {
	Name  string
	Cases []Case
}

// Case drives the pipeline over one source text. Exactly one of WantValue
// and WantFailure should be set; the printer expectations are independent
// and checked whenever non-empty.
type Case struct {
	Name        string
	Source      string
	WantValue   string
	WantFailure *Failure
	WantLisp    string
	WantPolish  string
	WantRPN     string
}

// Failure is an expected pipeline error. Message is matched as a substring;
// Line and Column are checked only when non-zero.
type Failure struct {
	Kind    string
	Message string
	Line    int
	Column  int
}

// Loader parses suite textprotos using a pre-populated proto registry.
type Loader struct {
	registry *protoregistry.Files
}

// NewLoader creates a Loader with the conformance schema registered.
func NewLoader() (*Loader, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	return &Loader{registry: registry}, nil
}

// ParseSuite parses textproto content into a Suite.
func (l *Loader) ParseSuite(data []byte) (*Suite, error) {
	desc, err := l.registry.FindDescriptorByName(protoreflect.FullName(suiteMessageName))
	if err != nil {
		return nil, fmt.Errorf("message %q not found in registry: %w", suiteMessageName, err)
	}
	msgDesc, ok := desc.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, fmt.Errorf("%q is not a message type", suiteMessageName)
	}

	msg := dynamicpb.NewMessage(msgDesc)
	opts := prototext.UnmarshalOptions{
		Resolver: l,
	}
	if err := opts.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("failed to parse suite textproto: %w", err)
	}

	return suiteFromMessage(msg.ProtoReflect()), nil
}

// LoadSuiteFile reads and parses one suite file.
func (l *Loader) LoadSuiteFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	suite, err := l.ParseSuite(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return suite, nil
}

// LoadSuiteDir loads every .textproto file in a directory, sorted by file
// name so runs are deterministic.
func (l *Loader) LoadSuiteDir(dirPath string) ([]*Suite, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".textproto") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var suites []*Suite
	for _, name := range names {
		suite, err := l.LoadSuiteFile(filepath.Join(dirPath, name))
		if err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

// RegisteredMessages returns all message names known to the loader.
func (l *Loader) RegisteredMessages() []string {
	var messages []string
	l.registry.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
		msgs := fd.Messages()
		for i := 0; i < msgs.Len(); i++ {
			messages = append(messages, string(msgs.Get(i).FullName()))
		}
		return true
	})
	sort.Strings(messages)
	return messages
}

// FindMessageByName implements protoregistry.MessageTypeResolver
func (l *Loader) FindMessageByName(name protoreflect.FullName) (protoreflect.MessageType, error) {
	desc, err := l.registry.FindDescriptorByName(name)
	if err != nil {
		return nil, err
	}
	msgDesc, ok := desc.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, fmt.Errorf("%q is not a message type", name)
	}
	return dynamicpb.NewMessageType(msgDesc), nil
}

// FindMessageByURL implements protoregistry.MessageTypeResolver
func (l *Loader) FindMessageByURL(url string) (protoreflect.MessageType, error) {
	name := protoreflect.FullName(strings.TrimPrefix(url, "type.googleapis.com/"))
	return l.FindMessageByName(name)
}

// FindExtensionByName implements protoregistry.ExtensionTypeResolver
func (l *Loader) FindExtensionByName(name protoreflect.FullName) (protoreflect.ExtensionType, error) {
	return nil, protoregistry.NotFound
}

// FindExtensionByNumber implements protoregistry.ExtensionTypeResolver
func (l *Loader) FindExtensionByNumber(message protoreflect.FullName, field protoreflect.FieldNumber) (protoreflect.ExtensionType, error) {
	return nil, protoregistry.NotFound
}

func suiteFromMessage(msg protoreflect.Message) *Suite {
	fields := msg.Descriptor().Fields()
	suite := &Suite{
		Name: msg.Get(fields.ByName("name")).String(),
	}
	cases := msg.Get(fields.ByName("case")).List()
	for i := 0; i < cases.Len(); i++ {
		suite.Cases = append(suite.Cases, caseFromMessage(cases.Get(i).Message()))
	}
	return suite
}

func caseFromMessage(msg protoreflect.Message) Case {
	fields := msg.Descriptor().Fields()
	c := Case{
		Name:       msg.Get(fields.ByName("name")).String(),
		Source:     msg.Get(fields.ByName("source")).String(),
		WantValue:  msg.Get(fields.ByName("want_value")).String(),
		WantLisp:   msg.Get(fields.ByName("want_lisp")).String(),
		WantPolish: msg.Get(fields.ByName("want_polish")).String(),
		WantRPN:    msg.Get(fields.ByName("want_rpn")).String(),
	}
	failureField := fields.ByName("want_failure")
	if msg.Has(failureField) {
		c.WantFailure = failureFromMessage(msg.Get(failureField).Message())
	}
	return c
}

func failureFromMessage(msg protoreflect.Message) *Failure {
	fields := msg.Descriptor().Fields()
	return &Failure{
		Kind:    msg.Get(fields.ByName("kind")).String(),
		Message: msg.Get(fields.ByName("message")).String(),
		Line:    int(msg.Get(fields.ByName("line")).Uint()),
		Column:  int(msg.Get(fields.ByName("column")).Uint()),
	}
}
