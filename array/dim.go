// Copyright 2025 go-highway Authors
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

package array

// Dim is a compile-time extent. Implementations are empty structs whose Len
// method returns a constant.
type Dim interface {
	Len() int
}

// D1 is the extent 1.
type D1 struct{}

// D2 is the extent 2.
type D2 struct{}

// D3 is the extent 3.
type D3 struct{}

// D4 is the extent 4.
type D4 struct{}

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }

func extent[D Dim]() int {
	var d D
	return d.Len()
}

// dims is embedded in every array, policy and expression node. Its Dims
// method puts the shape into the method set, which is what makes Expr
// values of different shapes distinct types.
type dims[R, C Dim] struct{}

// Dims returns the row and column marker values.
func (dims[R, C]) Dims() (r R, c C) {
	return
}
