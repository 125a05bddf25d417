/*
 * errors.go, part of molecool.
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
	"errors"
	"fmt"
	"strings"
)

//Sentinel errors. CErrors built from them match with errors.Is.
var (
	ErrSamePoint       = errors.New("two atoms are located at the same point")
	ErrNegativeMinBond = errors.New("minimum bond length must be greater than or equal to 0")
	ErrBondWindow      = errors.New("maximum bond length must be greater than the minimum")
	ErrSymbolsCoords   = errors.New("coordinates and symbols reference different numbers of atoms")
	ErrNoAtoms         = errors.New("no atoms found")
)

//CError is the error type for the chem package.
type CError struct {
	msg      string
	deco     []string
	critical bool
	err      error //the underlying cause, if any
}

func newCError(msg string, cause error, deco ...string) *CError {
	return &CError{msg: msg, deco: deco, critical: true, err: cause}
}

//Error returns a string with an error message.
func (err *CError) Error() string {
	if err.err != nil && err.msg == "" {
		return err.err.Error()
	}
	if err.err != nil {
		return fmt.Sprintf("%s: %v", err.msg, err.err)
	}
	return err.msg
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored
func (err *CError) Critical() bool { return err.critical }

//Unwrap returns the cause of the error, so errors.Is and errors.As work.
func (err *CError) Unwrap() error { return err.err }

//Trace returns the chain of functions the error went through, innermost first.
func (err *CError) Trace() string {
	return strings.Join(err.deco, " <- ")
}

//errDecorate decorates err with the caller's name if err implements Error.
//Other errors are wrapped in a CError first.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err
	}
	return newCError("", err, caller)
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilData         = PanicMsg("molecool: Given nil data")
	ErrAtomOutOfRange  = PanicMsg("molecool: Requested atom out of range")
	ErrFrameOutOfRange = PanicMsg("molecool: Requested frame out of range")
)
