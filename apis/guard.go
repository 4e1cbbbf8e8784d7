/*
   Copyright 2025 The DIRPX Authors.

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

package apis

// Guard classifies requested names as interceptable or reserved.
// Implementations are read-only after construction and must be safe for
// concurrent use without locking.
type Guard interface {
	// Interceptable reports whether name may route through fallback.
	Interceptable(name string) bool
	// Reserved reports whether name is in the reserved set. Reserved
	// names never reach the fallback handler.
	Reserved(name string) bool
	// Names returns a snapshot of the reserved set for diagnostics/docs
	// (order is unspecified).
	Names() []string
}
