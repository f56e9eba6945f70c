package cache

// Mutation names every write operation of the SDK.
type Mutation string

const (
	MutCreateSchool     Mutation = "create-school"
	MutUpdateSchool     Mutation = "update-school"
	MutActivateSchool   Mutation = "activate-school"
	MutDeactivateSchool Mutation = "deactivate-school"
	MutDeleteSchool     Mutation = "delete-school"

	MutRenewSubscription Mutation = "renew-subscription"

	MutCreateUser Mutation = "create-user"
	MutUpdateUser Mutation = "update-user"
	MutDeleteUser Mutation = "delete-user"

	MutCreateSubject Mutation = "create-subject"
	MutUpdateSubject Mutation = "update-subject"
	MutDeleteSubject Mutation = "delete-subject"

	MutCreateSection Mutation = "create-section"
	MutUpdateSection Mutation = "update-section"
	MutDeleteSection Mutation = "delete-section"

	MutCreateEnrollment Mutation = "create-enrollment"
	MutUpdateEnrollment Mutation = "update-enrollment"
	MutDeleteEnrollment Mutation = "delete-enrollment"

	MutCreateAssignment    Mutation = "create-assignment"
	MutUpdateAssignment    Mutation = "update-assignment"
	MutDeleteAssignment    Mutation = "delete-assignment"
	MutDuplicateAssignment Mutation = "duplicate-assignment"

	MutSaveSubmission   Mutation = "save-submission"
	MutSubmitSubmission Mutation = "submit-submission"
	MutReturnSubmission Mutation = "return-submission"

	MutGradeSubmission      Mutation = "grade-submission"
	MutBulkGradeSubmissions Mutation = "bulk-grade-submissions"
)

// gradeInvalidations: grades roll up everywhere. The submission
// itself, the assignment's summary, the section gradebook, the student
// grade views and the enrollment (whose final grade may aggregate).
var gradeInvalidations = []string{
	ResSubmissions,
	ResGradeSummaries,
	ResSectionGradebook,
	ResStudentGrades,
	ResMyGrades,
	ResEnrollments,
	ResMyEnrollments,
}

// Invalidations maps every mutation to the cache resources whose data it
// could have changed. The table is deliberately conservative: staleness
// is a worse failure mode than an extra refetch in a shared multi-user
// system, so when in doubt a resource is listed.
var Invalidations = map[Mutation][]string{
	MutCreateSchool:     {ResSchools},
	MutUpdateSchool:     {ResSchools},
	MutActivateSchool:   {ResSchools},
	MutDeactivateSchool: {ResSchools},
	// deleting a school conceptually cascades to its users and sections
	// server-side; their cached lists go stale too.
	MutDeleteSchool: {ResSchools, ResUsers, ResSections, ResSubscriptions},

	MutRenewSubscription: {ResSubscriptions, ResExpiredSubscriptions, ResSchools},

	MutCreateUser: {ResUsers},
	MutUpdateUser: {ResUsers},
	MutDeleteUser: {ResUsers, ResEnrollments, ResMyEnrollments},

	// sections embed their subject's code/name
	MutCreateSubject: {ResSubjects},
	MutUpdateSubject: {ResSubjects, ResSections},
	MutDeleteSubject: {ResSubjects, ResSections},

	MutCreateSection: {ResSections},
	MutUpdateSection: {ResSections, ResSectionGradebook},
	MutDeleteSection: {ResSections, ResEnrollments, ResMyEnrollments, ResSectionGradebook},

	// enrollment_count on the section changed
	MutCreateEnrollment: {ResEnrollments, ResMyEnrollments, ResSections, ResSectionGradebook},
	MutUpdateEnrollment: {ResEnrollments, ResMyEnrollments, ResSections, ResSectionGradebook},
	MutDeleteEnrollment: {ResEnrollments, ResMyEnrollments, ResSections, ResSectionGradebook},

	MutCreateAssignment:    {ResAssignments, ResMyAssignments, ResSectionGradebook},
	MutUpdateAssignment:    {ResAssignments, ResMyAssignments, ResSectionGradebook},
	MutDeleteAssignment:    {ResAssignments, ResMyAssignments, ResSectionGradebook, ResGradeSummaries},
	MutDuplicateAssignment: {ResAssignments, ResMyAssignments, ResSectionGradebook},

	MutSaveSubmission:   {ResSubmissions},
	MutSubmitSubmission: {ResSubmissions, ResGradeSummaries, ResSectionGradebook},
	MutReturnSubmission: {ResSubmissions, ResGradeSummaries, ResSectionGradebook},

	MutGradeSubmission:      gradeInvalidations,
	MutBulkGradeSubmissions: gradeInvalidations,
}

// InvalidateFor marks every cache resource declared for the mutation
// stale. Dependent views refetch on their next read; nothing is patched
// in place and nothing refetches eagerly.
func (s *Store) InvalidateFor(m Mutation) {
	for _, res := range Invalidations[m] {
		s.InvalidateResource(res)
	}
}
