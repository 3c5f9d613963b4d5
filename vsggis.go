// Copyright 2021 Airbus Defence and Space
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

package vsggis

// DataType is a raster element data type. Values follow GDAL's GDT
// numbering so that converting to or from a raster binding is a cast.
type DataType int

const (
	//Unknown / Unset Datatype
	Unknown DataType = iota
	//Byte / UInt8
	Byte
	//UInt16 DataType
	UInt16
	//Int16 DataType
	Int16
	//UInt32 DataType
	UInt32
	//Int32 DataType
	Int32
	//Float32 DataType
	Float32
	//Float64 DataType
	Float64
)

// String implements Stringer. Names match GDAL's data type naming.
func (dtype DataType) String() string {
	switch dtype {
	case Byte:
		return "Byte"
	case UInt16:
		return "UInt16"
	case Int16:
		return "Int16"
	case UInt32:
		return "UInt32"
	case Int32:
		return "Int32"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	default:
		return "Unknown"
	}
}

// Size returns the number of bytes needed for one instance of DataType
func (dtype DataType) Size() int {
	switch dtype {
	case Byte:
		return 1
	case Int16, UInt16:
		return 2
	case Int32, UInt32, Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unsupported type")
	}
}

// IsFloatingPoint reports whether the data type stores floating point
// samples.
func (dtype DataType) IsFloatingPoint() bool {
	return dtype == Float32 || dtype == Float64
}

// Valid reports whether dtype is one of the supported raster element
// types.
func (dtype DataType) Valid() bool {
	return dtype >= Byte && dtype <= Float64
}
