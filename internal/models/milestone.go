package models

type Milestone struct {
	Week       int    `json:"week"`
	BabySize   string `json:"baby_size"`
	BabyInfo   string `json:"baby_info"`
	MotherInfo string `json:"mother_info"`
}

// DefaultMilestones is the week-keyed development reference shown on the
// dashboard, ordered by week.
func DefaultMilestones() []Milestone {
	return []Milestone{
		{Week: 8, BabySize: "raspberry", BabyInfo: "Baby's hands and feet are beginning to form.", MotherInfo: "You may experience morning sickness and fatigue."},
		{Week: 12, BabySize: "lime", BabyInfo: "Baby has developed all vital organs and is making small movements.", MotherInfo: "Your bump may start to show and nausea might improve."},
		{Week: 16, BabySize: "avocado", BabyInfo: "Baby can hear your voice now! Bones are getting stronger.", MotherInfo: "You might feel more energetic in your second trimester."},
		{Week: 20, BabySize: "banana", BabyInfo: "Baby is developing fingerprints and can suck their thumb.", MotherInfo: "You may start feeling the baby's movements."},
		{Week: 24, BabySize: "corn", BabyInfo: "Baby's face is fully formed with eyelashes, eyebrows, and hair.", MotherInfo: "Your belly button might start to protrude."},
		{Week: 28, BabySize: "eggplant", BabyInfo: "Baby's brain is developing rapidly and eyes can open and close.", MotherInfo: "You might experience backaches and trouble sleeping."},
		{Week: 32, BabySize: "squash", BabyInfo: "Baby is practicing breathing and has fingernails and toenails.", MotherInfo: "You may feel short of breath as your uterus expands."},
		{Week: 36, BabySize: "honeydew melon", BabyInfo: "Baby is gaining weight and preparing for birth.", MotherInfo: "You may feel pelvic pressure and have Braxton Hicks contractions."},
		{Week: 40, BabySize: "watermelon", BabyInfo: "Baby is fully developed and ready to meet you!", MotherInfo: "You're ready for delivery. Watch for signs of labor."},
	}
}
