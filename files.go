/*
 * files.go, part of molecool.
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

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	v3 "github.com/rmera/molecool/v3"
	"go.uber.org/zap"
)

//ErrUnknownFormat is returned by ReadFile and WriteFile for extensions they can't handle.
var ErrUnknownFormat = errors.New("molecool: unknown file format")

//symbolFromName guesses the element symbol from the PDB name of an atom.
func symbolFromName(name string) (string, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return "", fmt.Errorf("Couldn't guess symbol from an empty PDB name")
	}
	//Names like 1HB2 start with the hydrogen number.
	if name[0] >= '0' && name[0] <= '9' {
		name = name[1:]
		if name == "" {
			return "", fmt.Errorf("Couldn't guess symbol from PDB name")
		}
	}
	symbol := ""
	switch {
	case len(name) == 4 || name[0] == 'H': //I thiiink only Hs can have 4-char names in amber.
		symbol = "H"
	case name[0] == 'C':
		switch name {
		case "CU":
			symbol = "Cu"
		case "CO":
			symbol = "Co"
		case "CL":
			symbol = "Cl"
		default:
			symbol = "C" //Ca is not considered here
		}
	case name[0] == 'N':
		if name == "NA" {
			symbol = "Na"
		} else {
			symbol = "N"
		}
	case name[0] == 'O':
		symbol = "O"
	case name[0] == 'P':
		symbol = "P"
	case name[0] == 'S':
		if name == "SE" {
			symbol = "Se"
		} else {
			symbol = "S"
		}
	case strings.HasPrefix(name, "ZN"):
		symbol = "Zn"
	case strings.HasPrefix(name, "FE"):
		symbol = "Fe"
	case strings.HasPrefix(name, "MG"):
		symbol = "Mg"
	}
	if symbol == "" {
		return symbol, fmt.Errorf("Couldn't guess symbol from PDB name %s", name)
	}
	return symbol, nil
}

//normalizeSymbol turns "CL" or "cl" into "Cl".
func normalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return strings.ToUpper(s)
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

//padLine fills line with spaces up to 80 characters, so the fixed PDB
//columns can be sliced safely.
func padLine(line string) string {
	if len(line) < 80 {
		line += strings.Repeat(" ", 80-len(line))
	}
	return line
}

//parsePDBCoords reads the coordinates and the b-factor of an ATOM or HETATM line.
//The b-factor is optional.
func parsePDBCoords(line string, lineno int) ([]float64, float64, error) {
	coords := make([]float64, 3)
	var err error
	for i, cols := range [][2]int{{30, 38}, {38, 46}, {46, 54}} {
		coords[i], err = strconv.ParseFloat(strings.TrimSpace(line[cols[0]:cols[1]]), 64)
		if err != nil {
			return nil, 0, newCError(fmt.Sprintf("Malformed coordinate in line %d", lineno), err, "parsePDBCoords")
		}
	}
	var bfactor float64
	if b := strings.TrimSpace(line[60:66]); b != "" {
		bfactor, err = strconv.ParseFloat(b, 64)
		if err != nil {
			return nil, 0, newCError(fmt.Sprintf("Malformed b-factor in line %d", lineno), err, "parsePDBCoords")
		}
	}
	return coords, bfactor, nil
}

//readFullPDBLine parses a valid ATOM or HETATM line of a PDB file and returns an Atom
//object with the info except for the coordinates and b-factors, which  are returned
//separately as a slice of 3 float64 and a float64, respectively.
//Fields other than the coordinates are read only if present and well formed.
func readFullPDBLine(line string, lineno int) (*Atom, []float64, float64, error) {
	line = padLine(line)
	coords, bfactor, err := parsePDBCoords(line, lineno)
	if err != nil {
		return nil, nil, 0, err
	}
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.ID, _ = strconv.Atoi(strings.TrimSpace(line[6:11]))
	atom.Name = strings.TrimSpace(line[12:16])
	atom.MolName = strings.TrimSpace(line[17:20])
	atom.Chain = strings.TrimSpace(line[21:22])
	atom.MolID, _ = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if occ := strings.TrimSpace(line[54:60]); occ != "" {
		atom.Occupancy, _ = strconv.ParseFloat(occ, 64)
	}
	atom.Symbol = normalizeSymbol(line[76:78])
	//charges are written like "2-"
	if ch := strings.TrimSpace(line[78:80]); len(ch) == 2 {
		if q, err := strconv.Atoi(ch[:1]); err == nil {
			atom.Charge = float64(q)
			if ch[1] == '-' {
				atom.Charge = -atom.Charge
			}
		}
	}
	//This part tries to guess the symbol from the atom name, if it has not been read
	if atom.Symbol == "" {
		atom.Symbol, err = symbolFromName(atom.Name)
		if err != nil {
			return nil, nil, 0, newCError(fmt.Sprintf("No element symbol in line %d", lineno), err, "readFullPDBLine")
		}
		logger.Warn("element symbol guessed from atom name",
			zap.Int("line", lineno), zap.String("name", atom.Name), zap.String("symbol", atom.Symbol))
	}
	atom.Mass = symbolMass[atom.Symbol]
	atom.Vdw = symbolVdwrad[atom.Symbol]
	return atom, coords, bfactor, nil
}

//PDBRead reads a PDB stream from pdb. ATOM and HETATM records are read. Every MODEL
//in the file is returned as a frame of the molecule, and all models must contain the
//same number of atoms. The element symbol is read from columns 77-78 and guessed from the
//atom name if those are empty.
func PDBRead(pdb io.Reader) (*Molecule, error) {
	var (
		atoms    []*Atom
		coords   [][]float64
		bfactors [][]float64
		curc     []float64
		curb     []float64
		first    = true //are we reading the first model? if not we only save coordinates
	)
	closeFrame := func(lineno int) error {
		if len(curb) == 0 {
			return nil
		}
		if !first && len(curb) != len(atoms) {
			return newCError(fmt.Sprintf("Model ending in line %d has %d atoms, first model has %d", lineno, len(curb), len(atoms)), ErrSymbolsCoords, "PDBRead")
		}
		coords = append(coords, curc)
		bfactors = append(bfactors, curb)
		curc, curb = nil, nil
		first = false
		return nil
	}
	scanner := bufio.NewScanner(pdb)
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)
	lineno := 0 //count the lines read to better report errors
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if len(line) < 3 {
			continue
		}
		rec := strings.TrimSpace(padLine(line)[0:6])
		switch rec {
		case "ATOM", "HETATM":
			if first {
				at, c, b, err := readFullPDBLine(line, lineno)
				if err != nil {
					return nil, errDecorate(err, "PDBRead")
				}
				atoms = append(atoms, at)
				curc = append(curc, c...)
				curb = append(curb, b)
				continue
			}
			c, b, err := parsePDBCoords(padLine(line), lineno)
			if err != nil {
				return nil, errDecorate(err, "PDBRead")
			}
			curc = append(curc, c...)
			curb = append(curb, b)
		case "MODEL", "ENDMDL":
			if err := closeFrame(lineno); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, newCError(fmt.Sprintf("Reading line %d", lineno+1), err, "PDBRead")
	}
	if err := closeFrame(lineno); err != nil {
		return nil, err
	}
	if len(atoms) == 0 {
		return nil, newCError("No ATOM or HETATM records", ErrNoAtoms, "PDBRead")
	}
	return buildMolecule(atoms, coords, bfactors, "PDBRead")
}

//buildMolecule puts together the molecule from the atoms and the flat coordinates of each frame.
func buildMolecule(atoms []*Atom, coords, bfactors [][]float64, caller string) (*Molecule, error) {
	top, err := NewTopology(atoms)
	if err != nil {
		return nil, errDecorate(err, caller)
	}
	top.FillMasses()
	top.FillVdw()
	frames := make([]*v3.Matrix, 0, len(coords))
	for _, c := range coords {
		m, err := v3.NewMatrix(c)
		if err != nil {
			return nil, newCError("", err, "v3.NewMatrix", caller)
		}
		frames = append(frames, m)
	}
	mol, err := NewMolecule(frames, top, bfactors)
	if err != nil {
		return nil, errDecorate(err, caller)
	}
	return mol, nil
}

//PDBFileRead reads the PDB file pdbname, which can be gzip- or zstd-compressed
//(.gz or .zst extension). See PDBRead.
func PDBFileRead(pdbname string) (*Molecule, error) {
	f, err := openRead(pdbname)
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead")
	}
	defer f.Close()
	mol, err := PDBRead(f)
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead "+pdbname)
	}
	return mol, nil
}

//XYZRead reads an xyz stream. It can contain several frames, one after the other.
//Each frame is a line with the number of atoms, a comment line, and one line per atom
//with the symbol and the three cartesian coordinates. All frames must have the same atoms.
func XYZRead(xyz io.Reader) (*Molecule, error) {
	var (
		atoms  []*Atom
		coords [][]float64
	)
	scanner := bufio.NewScanner(xyz)
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)
	lineno := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineno++
		return scanner.Text(), true
	}
	for {
		header, ok := next()
		//blank lines between frames are ignored.
		for ok && strings.TrimSpace(header) == "" {
			header, ok = next()
		}
		if !ok {
			break
		}
		natoms, err := strconv.Atoi(strings.TrimSpace(header))
		if err != nil || natoms <= 0 {
			return nil, newCError(fmt.Sprintf("Invalid number of atoms in line %d: %q", lineno, header), err, "XYZRead")
		}
		if len(coords) > 0 && natoms != len(atoms) {
			return nil, newCError(fmt.Sprintf("Frame starting in line %d has %d atoms, first frame has %d", lineno, natoms, len(atoms)), ErrSymbolsCoords, "XYZRead")
		}
		if _, ok := next(); !ok { //comment
			return nil, newCError(fmt.Sprintf("Missing comment line after line %d", lineno), io.ErrUnexpectedEOF, "XYZRead")
		}
		frame := make([]float64, 0, 3*natoms)
		for i := 0; i < natoms; i++ {
			line, ok := next()
			if !ok {
				return nil, newCError(fmt.Sprintf("Expected %d atoms, file ended after %d", natoms, i), io.ErrUnexpectedEOF, "XYZRead")
			}
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, newCError(fmt.Sprintf("Malformed atom in line %d: %q", lineno, line), nil, "XYZRead")
			}
			for _, f := range fields[1:4] {
				c, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, newCError(fmt.Sprintf("Malformed coordinate in line %d", lineno), err, "XYZRead")
				}
				frame = append(frame, c)
			}
			symbol := normalizeSymbol(fields[0])
			if len(coords) == 0 {
				atoms = append(atoms, &Atom{Name: symbol, Symbol: symbol, ID: i + 1, Mass: symbolMass[symbol], Vdw: symbolVdwrad[symbol]})
			} else if atoms[i].Symbol != symbol {
				return nil, newCError(fmt.Sprintf("Atom %d is %s in line %d and %s in the first frame", i, symbol, lineno, atoms[i].Symbol), ErrSymbolsCoords, "XYZRead")
			}
		}
		coords = append(coords, frame)
	}
	if err := scanner.Err(); err != nil {
		return nil, newCError(fmt.Sprintf("Reading line %d", lineno+1), err, "XYZRead")
	}
	if len(atoms) == 0 {
		return nil, newCError("Empty xyz stream", ErrNoAtoms, "XYZRead")
	}
	return buildMolecule(atoms, coords, nil, "XYZRead")
}

//XYZFileRead reads the xyz file xyzname, which can be gzip- or zstd-compressed.
//See XYZRead.
func XYZFileRead(xyzname string) (*Molecule, error) {
	f, err := openRead(xyzname)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead")
	}
	defer f.Close()
	mol, err := XYZRead(f)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead "+xyzname)
	}
	return mol, nil
}

//ReadFile reads a PDB (.pdb, .ent) or xyz (.xyz) file, optionally compressed,
//choosing the reader from the file extension.
func ReadFile(fname string) (*Molecule, error) {
	switch formatExt(fname) {
	case "pdb", "ent":
		return PDBFileRead(fname)
	case "xyz":
		return XYZFileRead(fname)
	}
	return nil, newCError(fname, ErrUnknownFormat, "ReadFile")
}

//XYZWrite writes the coordinates in coord, with the symbols of the atoms in mol, as
//an xyz frame to out. The comment line is "XYZ file".
func XYZWrite(out io.Writer, coord *v3.Matrix, mol Atomer) error {
	if mol == nil || coord == nil {
		return newCError("nil molecule or coordinates", ErrNilData, "XYZWrite")
	}
	if mol.Len() != coord.NVecs() {
		return newCError(fmt.Sprintf("%d coordinates for %d atoms", coord.NVecs(), mol.Len()), ErrSymbolsCoords, "XYZWrite")
	}
	if _, err := fmt.Fprintf(out, "%d\nXYZ file\n", mol.Len()); err != nil {
		return newCError("", err, "XYZWrite")
	}
	for i := 0; i < mol.Len(); i++ {
		c := coord.RawRowView(i)
		if _, err := fmt.Fprintf(out, "%-2s  %14.8f %14.8f %14.8f\n", mol.Atom(i).Symbol, c[0], c[1], c[2]); err != nil {
			return newCError(fmt.Sprintf("Writing atom %d", i), err, "XYZWrite")
		}
	}
	return nil
}

//XYZFileWrite writes coord, with the symbols in mol, to the xyz file xyzname.
//The file is compressed if the name ends in .gz or .zst.
func XYZFileWrite(xyzname string, coord *v3.Matrix, mol Atomer) error {
	return writeFile(xyzname, func(w io.Writer) error { return XYZWrite(w, coord, mol) }, "XYZFileWrite")
}

//XYZStringWrite returns the xyz representation of coord and mol.
func XYZStringWrite(coord *v3.Matrix, mol Atomer) (string, error) {
	var b strings.Builder
	if err := XYZWrite(&b, coord, mol); err != nil {
		return "", errDecorate(err, "XYZStringWrite")
	}
	return b.String(), nil
}

//writePDBAtom writes one ATOM or HETATM record.
func writePDBAtom(out io.Writer, at *Atom, serial int, c []float64, bfac float64) error {
	rec := "ATOM"
	if at.Het {
		rec = "HETATM"
	}
	name := at.Name
	if name == "" {
		name = at.Symbol
	}
	molname := at.MolName
	if molname == "" {
		molname = "UNK"
	}
	chain := at.Chain
	if chain == "" {
		chain = " "
	}
	molid := at.MolID
	if molid == 0 {
		molid = 1
	}
	charge := ""
	if q := int(at.Charge); q != 0 && at.Charge == float64(q) && q > -10 && q < 10 {
		sign := "+"
		if q < 0 {
			sign = "-"
			q = -q
		}
		charge = fmt.Sprintf("%d%s", q, sign)
	}
	//4-char names start one column earlier.
	format := "%-6s%5d  %-3s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%2s\n"
	if len(name) >= 4 {
		format = "%-6s%5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%2s\n"
	}
	_, err := fmt.Fprintf(out, format, rec, serial%100000, name, molname, chain, molid%10000,
		c[0], c[1], c[2], at.Occupancy, bfac, strings.ToUpper(at.Symbol), charge)
	return err
}

//PDBWriteFrames writes all the frames in coords to out as a PDB stream. If there is more than one
//frame, each is written as a MODEL. bfact can be nil, or contain the b-factors of each frame.
func PDBWriteFrames(out io.Writer, coords []*v3.Matrix, mol Atomer, bfact [][]float64) error {
	if mol == nil || len(coords) == 0 {
		return newCError("nil molecule or no coordinates", ErrNilData, "PDBWriteFrames")
	}
	multi := len(coords) > 1
	for f, coord := range coords {
		if coord == nil || coord.NVecs() != mol.Len() {
			return newCError(fmt.Sprintf("Frame %d doesn't match the %d atoms", f, mol.Len()), ErrSymbolsCoords, "PDBWriteFrames")
		}
		if multi {
			if _, err := fmt.Fprintf(out, "MODEL     %4d\n", f+1); err != nil {
				return newCError("", err, "PDBWriteFrames")
			}
		}
		for i := 0; i < mol.Len(); i++ {
			var b float64
			if f < len(bfact) && i < len(bfact[f]) {
				b = bfact[f][i]
			}
			if err := writePDBAtom(out, mol.Atom(i), i+1, coord.RawRowView(i), b); err != nil {
				return newCError(fmt.Sprintf("Writing atom %d of frame %d", i, f), err, "PDBWriteFrames")
			}
		}
		if multi {
			if _, err := fmt.Fprintln(out, "ENDMDL"); err != nil {
				return newCError("", err, "PDBWriteFrames")
			}
		}
	}
	if _, err := fmt.Fprintln(out, "END"); err != nil {
		return newCError("", err, "PDBWriteFrames")
	}
	return nil
}

//PDBWrite writes a single frame, coord, of mol to out in PDB format. bfact can be nil.
func PDBWrite(out io.Writer, coord *v3.Matrix, mol Atomer, bfact []float64) error {
	var b [][]float64
	if bfact != nil {
		b = [][]float64{bfact}
	}
	if err := PDBWriteFrames(out, []*v3.Matrix{coord}, mol, b); err != nil {
		return errDecorate(err, "PDBWrite")
	}
	return nil
}

//PDBFileWrite writes a single frame of mol to the PDB file pdbname.
//The file is compressed if the name ends in .gz or .zst.
func PDBFileWrite(pdbname string, coord *v3.Matrix, mol Atomer, bfact []float64) error {
	return writeFile(pdbname, func(w io.Writer) error { return PDBWrite(w, coord, mol, bfact) }, "PDBFileWrite")
}

//WriteFile writes every frame of mol to fname, in PDB or xyz format
//depending on the extension. Several frames give MODEL records in PDB files and
//consecutive frames in xyz files.
func WriteFile(fname string, mol *Molecule) error {
	if mol == nil {
		return newCError("nil molecule", ErrNilData, "WriteFile")
	}
	var write func(io.Writer) error
	switch formatExt(fname) {
	case "pdb", "ent":
		write = func(w io.Writer) error { return PDBWriteFrames(w, mol.Coords, mol, mol.Bfactors) }
	case "xyz":
		write = func(w io.Writer) error {
			for _, c := range mol.Coords {
				if err := XYZWrite(w, c, mol); err != nil {
					return err
				}
			}
			return nil
		}
	default:
		return newCError(fname, ErrUnknownFormat, "WriteFile")
	}
	return writeFile(fname, write, "WriteFile")
}

//writeFile creates fname and hands it to write, making sure
//everything is flushed and closed.
func writeFile(fname string, write func(io.Writer) error, caller string) error {
	out, err := createWrite(fname)
	if err != nil {
		return errDecorate(err, caller)
	}
	if err := write(out); err != nil {
		out.Close()
		return errDecorate(err, caller)
	}
	if err := out.Close(); err != nil {
		return newCError("Closing "+fname, err, caller)
	}
	return nil
}
