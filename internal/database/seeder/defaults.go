package seeder

// Defaults is the ordered seeder set run at startup. Users reference goals,
// so goals come first.
func Defaults() []Seeder {
	return []Seeder{
		GoalsSeeder{},
		MentorsSeeder{},
		ResourcesSeeder{},
		DemoUsersSeeder{},
	}
}
