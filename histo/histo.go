/*
 * histo.go, part of molecool.
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

//Package histo builds histograms over fixed dividers, on top of
//gonum's stat.Histogram. It is used to bin bond lengths.
package histo

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//ErrDividers is returned when the requested dividers can't define a histogram.
var ErrDividers = errors.New("molecool/histo: invalid histogram dividers")

//Dividers returns n evenly spaced values from min to max, both included,
//which delimit n-1 bins.
func Dividers(min, max float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: %d dividers requested, at least 2 needed", ErrDividers, n)
	}
	if !(max > min) || math.IsInf(max-min, 0) {
		return nil, fmt.Errorf("%w: range %g-%g", ErrDividers, min, max)
	}
	d := floats.Span(make([]float64, n), min, max)
	//Span accumulates rounding error in the last value.
	d[0], d[n-1] = min, max
	return d, nil
}

//Data is a histogram.
type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//jsonData is the serialized form of Data.
type jsonData struct {
	ID         int       `json:"id"`
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return fmt.Errorf("%w: %d dividers for %d bins", ErrDividers, len(a.Dividers), len(a.Histo))
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

//String prints a -hopefully- pretty string representation of
//the histogram. The representation uses 3 lines of text.
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil. In that case, an empty histogram is created.
//if an ID for the histogram is given, it will be set. If not, the ID will
//be set to -1. It panics if dividers has fewer than 2 elements or is not sorted.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("molecool/histo.NewData: dividers must be at least 2 sorted values")
	}
	d := new(Data)
	//I prefer to copy the slice to avoid somebody changing it from outside
	d.dividers = append([]float64(nil), dividers...)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

//AddData adds the given data point(s) to the histogram. Points outside
//the dividers are not counted. Bins are [lo, hi), except the last one,
//which also takes points equal to the last divider.
func (D *Data) AddData(point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v > D.dividers[last] {
			continue
		}
		if v == D.dividers[last] {
			D.histo[last-1]++
			D.total++
			continue
		}
		//index of the first divider larger than v
		j := sort.Search(len(D.dividers), func(i int) bool { return D.dividers[i] > v })
		D.histo[j-1]++
		D.total++
	}
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

//normalizes or un-normalizes the histogram depending
//on whether normalize is true
func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//Total returns the number of data points counted in the histogram.
func (D *Data) Total() int {
	return D.total
}

//Len returns the number of bins.
func (D *Data) Len() int {
	return len(D.histo)
}

//Bin returns the lower and upper limits of the bin i, and its value.
func (D *Data) Bin(i int) (lo, hi, value float64) {
	return D.dividers[i], D.dividers[i+1], D.histo[i]
}

//CopyDividers copies the dividers of the histogram into dest, if given
//and large enough, or into a new slice.
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	copy(d, D.dividers)
	return d
}

//Copy copies the values of the histogram into dest, if given and large enough,
//or into a new slice.
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	copy(d, D.histo)
	return d
}

//View returns the values of the histogram, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

//checkMatch panics unless a and b have the same dividers.
func checkMatch(a, b *Data, caller string) {
	if !floats.Equal(a.dividers, b.dividers) {
		panic("molecool/histo.Data." + caller + ": Dividers must match in combined histograms")
	}
}

//Add adds the histograms a and b putting the result in the receiver.
func (D *Data) Add(a, b *Data) {
	checkMatch(a, b, "Add")
	D.dividers = a.CopyDividers(D.dividers)
	D.histo = getCopySlice(len(a.histo), D.histo)
	floats.AddTo(D.histo, a.histo, b.histo)
	D.total = a.total + b.total
}

//Sub substract the histograms a and b puting the results in the receiver
//if abs is given and true (only the first element is considered), the absolute
//value of each difference is taken.
func (D *Data) Sub(a, b *Data, abs ...bool) {
	checkMatch(a, b, "Sub")
	D.dividers = a.CopyDividers(D.dividers)
	D.histo = getCopySlice(len(a.histo), D.histo)
	floats.SubTo(D.histo, a.histo, b.histo)
	if len(abs) > 0 && abs[0] {
		for i, v := range D.histo {
			D.histo[i] = math.Abs(v)
		}
	}
}

//Sum returns the sum of all the bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//Max returns the largest bin value, or 0 for an empty histogram.
func (D *Data) Max() float64 {
	if len(D.histo) == 0 {
		return 0
	}
	return floats.Max(D.histo)
}

//ReHisto replaces the histogram by one with the given dividers built from
//rawdata. rawdata is not modified.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	//stat.Histograms just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	top := dividers[len(dividers)-1]
	maxi := sort.SearchFloat64s(data, top)
	mini := sort.SearchFloat64s(data, dividers[0])
	//values equal to the last divider go in the last bin, which is closed.
	attop := sort.Search(len(data), func(i int) bool { return data[i] > top }) - maxi
	data = data[mini:maxi]
	D.dividers = append(D.dividers[:0], dividers...)
	D.total = len(data) + attop //as this could have been modified
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
	D.histo[len(D.histo)-1] += float64(attop)
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	if len(dest) > 0 && len(dest[0]) >= N {
		return dest[0][:N]
	}
	return make([]float64, N)
}
