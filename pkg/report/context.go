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

package report

import (
	"context"
)

type currentKey struct{}

// WithCurrent binds the test entry that helpers further down the call
// chain should log to. The binding travels with the context, so it ends
// when the test's context does.
func WithCurrent(ctx context.Context, entry *TestReport) context.Context {
	return context.WithValue(ctx, currentKey{}, entry)
}

// Current returns the bound entry, or nil when the context has none.
// Combined with nil-safe logging, Current(ctx).Info(...) is always safe.
func Current(ctx context.Context) *TestReport {
	if ctx == nil {
		return nil
	}

	entry, _ := ctx.Value(currentKey{}).(*TestReport)

	return entry
}
