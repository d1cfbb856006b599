// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import (
	"os"

	"github.com/rs/zerolog"
)

// tracer is the package's diagnostic logger. It is disabled by default
// (zerolog.Disabled) so production callers pay nothing for it; tests and
// callers debugging a specific multiplication or Newton-Raphson run can
// turn it on with EnableTracing.
var tracer zerolog.Logger = zerolog.New(os.Stderr).Level(zerolog.Disabled).With().Timestamp().Logger()

// EnableTracing turns on structured diagnostic logging of dispatcher
// algorithm selection and Newton-Raphson precision rungs, written to w at
// the given level. Pass zerolog.Disabled to silence it again.
func EnableTracing(w zerolog.ConsoleWriter, level zerolog.Level) {
	tracer = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// traceMulAlgo logs which multiplication algorithm the dispatcher picked
// for a given operand size.
func traceMulAlgo(algo mulAlgo, m, n int) {
	tracer.Debug().
		Str("algo", algoName(algo)).
		Int("m_limbs", m).
		Int("n_limbs", n).
		Msg("dispatch: multiply")
}

// traceSqrAlgo logs which squaring algorithm the dispatcher picked.
func traceSqrAlgo(algo mulAlgo, n int) {
	tracer.Debug().
		Str("algo", algoName(algo)).
		Int("n_limbs", n).
		Msg("dispatch: square")
}

// traceNewtonRung logs one Newton-Raphson correction step of the
// reciprocal/square-root doubling precision schedule.
func traceNewtonRung(op string, workPrec int) {
	tracer.Trace().
		Str("op", op).
		Int("work_prec", workPrec).
		Msg("newton: rung")
}

func algoName(a mulAlgo) string {
	switch a {
	case algoSchoolbook:
		return "schoolbook"
	case algoKaratsuba:
		return "karatsuba"
	case algoToom3:
		return "toom3"
	case algoToom4:
		return "toom4h"
	default:
		return "toom6h"
	}
}
