/*
Copyright 2025-2026 the Bookstore QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package contract wraps pact mock provider construction so the consumer
// suites share one configuration shape.
package contract

import (
	"fmt"

	"github.com/pact-foundation/pact-go/v2/consumer"
)

// PactConfig names the two sides of a pact and where pact files are
// written.
type PactConfig struct {
	Consumer string
	Provider string
	PactDir  string
}

// NewV4Pact builds a V4 HTTP mock provider for a consumer contract test.
func NewV4Pact(config PactConfig) (*consumer.V4HTTPMockProvider, error) {
	pact, err := consumer.NewV4Pact(consumer.MockHTTPProviderConfig{
		Consumer: config.Consumer,
		Provider: config.Provider,
		PactDir:  config.PactDir,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pact mock provider: %w", err)
	}

	return pact, nil
}
