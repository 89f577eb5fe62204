// Package mps loads fixed-format MPS files through GLPK.
package mps

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lukpank/go-glpk/glpk"
	"q.log/exactsimplex/extended"
	"q.log/exactsimplex/instance"
	"q.log/exactsimplex/model"
)

// ErrNegativeColumn is returned for a column whose lower bound is below zero
// or missing. Every tableau column is implicitly non-negative.
var ErrNegativeColumn = errors.New("mps: column may be negative")

// Reader reads a mps file to construct a builder
type Reader struct {
	filename string
}

// NewReader returns a reader for the fixed MPS file at filename.
func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
	}
}

func exact(v float64) extended.Number {
	return extended.FromRat(new(big.Rat).SetFloat64(v))
}

func unbounded(v float64) bool {
	return v == math.MaxFloat64 || v == -math.MaxFloat64
}

// ConstructInstance returns the file as a maximization over non-negative
// variables. Coefficients are converted exactly from float64.
func (r *Reader) ConstructInstance() (*instance.Instance, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, r.filename); err != nil {
		return nil, fmt.Errorf("failed to read MPS file: %w", err)
	}

	numCols := lp.NumCols()
	sign := 1.0
	if lp.ObjDir() == glpk.MIN {
		sign = -1
	}

	//populate obj function
	objVec := make([]extended.Number, numCols)
	for c := range numCols {
		objVec[c] = exact(sign * lp.ObjCoef(c+1))
	}
	b := model.NewBuilder()
	b.SetObjective(model.NewRow(objVec, exact(-sign*lp.ObjCoef(0))))

	//populate constraints
	for r := 1; r <= lp.NumRows(); r++ {
		rowVec := make([]extended.Number, numCols)
		for c := range rowVec {
			rowVec[c] = extended.Zero()
		}
		idxs, row := lp.MatRow(r)
		for i, v := range idxs {
			if v == 0 {
				continue
			}
			rowVec[v-1] = exact(row[i])
		}

		lb, ub := lp.RowLB(r), lp.RowUB(r)
		switch {
		case unbounded(lb) && unbounded(ub):
			continue
		case unbounded(lb):
			b.AddConstraintRow(model.NewRow(rowVec, exact(ub)), model.LessEqual)
		case unbounded(ub):
			b.AddConstraintRow(model.NewRow(rowVec, exact(lb)), model.GreaterEqual)
		case lb == ub:
			b.AddConstraintRow(model.NewRow(rowVec, exact(lb)), model.Equal)
		default:
			b.AddConstraintRow(model.NewRow(rowVec, exact(lb)), model.GreaterEqual)
			b.AddConstraintRow(model.NewRow(rowVec, exact(ub)), model.LessEqual)
		}
	}

	// column bounds other than x >= 0 become single-variable rows
	for c := range numCols {
		lb, ub := lp.ColLB(c+1), lp.ColUB(c+1)
		if unbounded(lb) || lb < 0 {
			return nil, fmt.Errorf("column %s: %w", lp.ColName(c+1), ErrNegativeColumn)
		}
		bound := func(v float64, rel model.Relation) {
			rowVec := make([]extended.Number, numCols)
			for k := range rowVec {
				rowVec[k] = extended.Zero()
			}
			rowVec[c] = extended.One()
			b.AddConstraintRow(model.NewRow(rowVec, exact(v)), rel)
		}
		if lb > 0 {
			bound(lb, model.GreaterEqual)
		}
		if !unbounded(ub) {
			bound(ub, model.LessEqual)
		}
	}

	name := lp.ProbName()
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(r.filename), filepath.Ext(r.filename))
	}
	return &instance.Instance{Name: name, Builder: b}, nil
}
