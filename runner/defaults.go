package runner

// DefaultRegistry returns the registry of benchmarks shipped in this
// repository. Quick overrides shrink each workload far enough that a
// full "all" run finishes in seconds; the numbers are smoke-test
// values, not measurement values.
func DefaultRegistry() *Registry {
	return NewRegistry([]Entry{
		// Basic: everyday operations on builtin types.
		{ID: "iterate2d", Category: CategoryBasic, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "10", "BENCHVS_SIZE": "100",
		}},
		{ID: "rowcol", Category: CategoryBasic, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "10", "BENCHVS_SIZE": "100",
		}},
		{ID: "mapaccess", Category: CategoryBasic, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "100", "BENCHVS_SIZE": "100",
		}},
		{ID: "stringconcat", Category: CategoryBasic, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "10", "BENCHVS_SIZE": "100",
		}},
		{ID: "sliceops", Category: CategoryBasic, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "10", "BENCHVS_SIZE": "100",
		}},
		{ID: "fileio", Category: CategoryBasic, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "10", "BENCHVS_SIZE": "100",
		}},
		{ID: "jsoncodec", Category: CategoryBasic, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "10", "BENCHVS_SIZE": "10",
		}},
		{ID: "setops", Category: CategoryBasic, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "100", "BENCHVS_SIZE": "100",
		}},
		{ID: "funccall", Category: CategoryBasic, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "1000", "BENCHVS_CALLS": "100",
		}},
		{ID: "lookup", Category: CategoryBasic, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "100", "BENCHVS_LOOKUPS": "100",
		}},

		// Advanced: concurrency, regex, allocation behavior.
		{ID: "concurrency", Category: CategoryAdvanced, QuickEnv: map[string]string{
			"BENCHVS_TASKS": "10", "BENCHVS_SLEEP_US": "100",
		}},
		{ID: "regexmatch", Category: CategoryAdvanced, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "10", "BENCHVS_SIZE": "100",
		}},
		{ID: "objcreate", Category: CategoryAdvanced, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "1000",
		}},
		{ID: "deepcopy", Category: CategoryAdvanced, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "100", "BENCHVS_SIZE": "20",
		}},
		{ID: "pipeline", Category: CategoryAdvanced, QuickEnv: map[string]string{
			"BENCHVS_SIZE": "10000",
		}},

		// Expert: reflection, error paths, wire formats, numerics.
		{ID: "fieldaccess", Category: CategoryExpert, QuickEnv: map[string]string{
			"BENCHVS_ACCESSES": "10000",
		}},
		{ID: "errhandling", Category: CategoryExpert, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "1000",
		}},
		{ID: "serialization", Category: CategoryExpert, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "10", "BENCHVS_SIZE": "20",
		}},
		{ID: "defercost", Category: CategoryExpert, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "1000", "BENCHVS_FILES": "10",
		}},
		{ID: "decimalmath", Category: CategoryExpert, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "100", "BENCHVS_SIZE": "100",
		}},
		{ID: "expreval", Category: CategoryExpert, QuickEnv: map[string]string{
			"BENCHVS_ITERATIONS": "1000",
		}},
	})
}
