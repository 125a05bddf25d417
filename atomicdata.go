/*
 * atomicdata.go, part of molecool.
 *
 * Copyright 2026 The molecool authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chem

import "image/color"

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//Note that just common "bio-elements" are present
var symbolCovrad = map[string]float64{
	"H":  0.4,  // 0.31 I altered this one. Since H always has only one bond, it doesn't matter if I set a longer radius, the extra bonds will get eliminated later.
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,  // hs
	"Fe": 1.52, //hs
	"Mn": 1.61, //hs
	"Cr": 1.39,
	"Si": 1.11,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
}

//A map for assigning van der Waals radii to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//metal radii from 10.1023/A:1011625728803
//Note that just common "bio-elements" are present
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
}

//A map for checking that atoms don't
//have too many bonds. A value of 0 means
//undefined, i.e. that this atom shouldn't
//be checked for max bonds. I decided not to define it
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4, //the sp3 radius
	"O":  2,
	"N":  0, //undefined
	"P":  0,
	"S":  0,
	"Se": 0,
	"Be": 0,
	"F":  1,
	"Br": 1,
	"I":  1,
}

//CPK-like colors for the elements, used when drawing molecules.
//Elements not in the map are drawn in pink.
var symbolColor = map[string]color.RGBA{
	"H":  {R: 255, G: 255, B: 255, A: 255},
	"C":  {R: 144, G: 144, B: 144, A: 255},
	"N":  {R: 48, G: 80, B: 248, A: 255},
	"O":  {R: 255, G: 13, B: 13, A: 255},
	"F":  {R: 144, G: 224, B: 80, A: 255},
	"Cl": {R: 31, G: 240, B: 31, A: 255},
	"Br": {R: 166, G: 41, B: 41, A: 255},
	"I":  {R: 148, G: 0, B: 148, A: 255},
	"P":  {R: 255, G: 128, B: 0, A: 255},
	"S":  {R: 255, G: 255, B: 48, A: 255},
	"Se": {R: 255, G: 161, B: 0, A: 255},
	"Na": {R: 171, G: 92, B: 242, A: 255},
	"K":  {R: 143, G: 64, B: 212, A: 255},
	"Mg": {R: 138, G: 255, B: 0, A: 255},
	"Ca": {R: 61, G: 255, B: 0, A: 255},
	"Fe": {R: 224, G: 102, B: 51, A: 255},
	"Cu": {R: 200, G: 128, B: 51, A: 255},
	"Zn": {R: 125, G: 128, B: 176, A: 255},
	"Co": {R: 240, G: 144, B: 160, A: 255},
	"Mn": {R: 156, G: 122, B: 199, A: 255},
	"Cr": {R: 138, G: 153, B: 199, A: 255},
	"Si": {R: 240, G: 200, B: 160, A: 255},
	"Be": {R: 194, G: 255, B: 0, A: 255},
}

var unknownColor = color.RGBA{R: 255, G: 20, B: 147, A: 255}

//Mass returns the atomic mass of the element with the given symbol, or 0
//if the element is not in the table.
func Mass(symbol string) float64 {
	return symbolMass[symbol]
}

//CovalentRadius returns the covalent radius, in A, of the element with the
//given symbol, or 0 if the element is not in the table.
func CovalentRadius(symbol string) float64 {
	return symbolCovrad[symbol]
}

//VdwRadius returns the van der Waals radius, in A, of the element with the
//given symbol, or 0 if the element is not in the table.
func VdwRadius(symbol string) float64 {
	return symbolVdwrad[symbol]
}

//Color returns the color used to draw the element with the given symbol.
func Color(symbol string) color.RGBA {
	if c, ok := symbolColor[symbol]; ok {
		return c
	}
	return unknownColor
}

//KnownSymbol returns true if symbol is in the element tables.
func KnownSymbol(symbol string) bool {
	_, ok := symbolMass[symbol]
	return ok
}
