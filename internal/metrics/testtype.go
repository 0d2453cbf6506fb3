package metrics

// Category groups test types by the analysis algorithm they use.
type Category string

const (
	CategoryJump      Category = "jump"
	CategoryIsometric Category = "isometric"
	CategoryBalance   Category = "balance"
)

// TestType identifies a force-plate test protocol.
type TestType string

const (
	TestCountermovementJump   TestType = "countermovement_jump"
	TestSquatJump             TestType = "squat_jump"
	TestDropJump              TestType = "drop_jump"
	TestIsometricMidThighPull TestType = "isometric_mid_thigh_pull"
	TestIsometricSquat        TestType = "isometric_squat"
	TestStaticBalance         TestType = "static_balance"
	TestSingleLegBalance      TestType = "single_leg_balance"
	TestDynamicBalance        TestType = "dynamic_balance"
)

// testProfile carries per-type constants used across the engine and the
// quality scorer. Nominal durations are protocol conventions, not
// clinically validated limits.
type testProfile struct {
	category          Category
	nominalDurationMs int64
}

var testProfiles = map[TestType]testProfile{
	TestCountermovementJump:   {CategoryJump, 5000},
	TestSquatJump:             {CategoryJump, 5000},
	TestDropJump:              {CategoryJump, 5000},
	TestIsometricMidThighPull: {CategoryIsometric, 8000},
	TestIsometricSquat:        {CategoryIsometric, 8000},
	TestStaticBalance:         {CategoryBalance, 30000},
	TestSingleLegBalance:      {CategoryBalance, 30000},
	TestDynamicBalance:        {CategoryBalance, 20000},
}

// Category returns the analysis category of t. ok is false for test types
// with no defined algorithm.
func (t TestType) Category() (category Category, ok bool) {
	p, ok := testProfiles[t]
	return p.category, ok
}

// NominalDurationMs returns the expected recording duration for t, used by
// the quality scorer's duration-band check. Returns 0 for unknown types.
func (t TestType) NominalDurationMs() int64 {
	return testProfiles[t].nominalDurationMs
}

// ParseTestType validates a test type string coming from configuration or
// storage. It fails with an UnsupportedTestTypeError for unknown values.
func ParseTestType(s string) (TestType, error) {
	t := TestType(s)
	if _, ok := testProfiles[t]; !ok {
		return "", &UnsupportedTestTypeError{TestType: t}
	}
	return t, nil
}
