// This file is part of KatOS.
//
// KatOS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// KatOS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with KatOS.  If not, see <https://www.gnu.org/licenses/>.

// Package memory contains the freestanding byte primitives Copy(), Fill()
// and Length(). They are the only functions that operate on raw buffers.
//
// The display memory itself is reached through the sub-packages:
//
//	                     console
//	                        |
//	                        |
//	                       VGA ---- debugger bus ---- tests / dumps
//	                        |
//	                    surface bus
//	                        |
//	         ----------------------------------
//	        |               |                  |
//	       RAM           Physical            Shared
//	                     (0xB8000)        (shm segment)
//
// The memorymap package describes the hardware contract of the display
// memory: where it is and what shape it is. The bus package defines the
// interfaces through which the memory is accessed and the surface package
// contains the implementations.
//
// The primitives perform no bounds checking of their own. Supplying a
// buffer shorter than the count is a contract violation, which Go reports
// with a runtime panic.
package memory
