// Copyright 2024 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

// GenesisRat's UnmarshalJSON (accepting either a {numerator, denominator}
// object or a bare decimal string) lives on cbor.Rat itself in the cbor
// package, since GenesisRat is an alias to it (see common.go) and Go does
// not allow attaching methods to an aliased type from a different package.
