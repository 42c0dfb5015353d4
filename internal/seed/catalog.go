// Package seed ships the built-in catalog of brands, championships,
// shows and roster members, and reconciles the database against it on
// startup.
package seed

import "wrestling-hub/internal/domain"

type Brand struct {
	Name           string
	PrimaryColor   string
	SecondaryColor string
	Logo           string
}

type Championship struct {
	Name      string
	Image     string
	BrandName string
}

type Show struct {
	Name      string
	BrandName string
	Type      domain.ShowType
	Valuation float64
}

type Wrestler struct {
	Name            string
	BrandName       string
	Gender          domain.Gender
	Alignment       domain.Alignment
	Rating          int
	Faction         string
	HoldsTitleNames []string
	Image           string
	Avatar          string
}

var Brands = []Brand{
	{Name: "RAW", PrimaryColor: "#e00012", SecondaryColor: "#000000", Logo: "./visuals/Brands/raw.png"},
	{Name: "SMACKDOWN", PrimaryColor: "#0070bb", SecondaryColor: "#000000", Logo: "./visuals/Brands/smackdown.png"},
	{Name: "NXT", PrimaryColor: "#e7b512ff", SecondaryColor: "#000000", Logo: "./visuals/Brands/nxt.png"},
}

var Championships = []Championship{
	{Name: "WWE Champion", Image: "./visuals/Championships/wwemen.png", BrandName: "RAW"},
	{Name: "WWE Women Champion", Image: "./visuals/Championships/wwewomen.png", BrandName: "RAW"},
	{Name: "United States Champion", Image: "./visuals/Championships/unitedstatesmen.png", BrandName: "RAW"},
	{Name: "United States Women Champion", Image: "./visuals/Championships/unitedstateswomen.png", BrandName: "RAW"},
	{Name: "WWE Tag Team Champions", Image: "./visuals/Championships/wwetagteam.png", BrandName: "RAW"},
	{Name: "World Heavyweight Champion", Image: "./visuals/Championships/worldheavyweightmen.png", BrandName: "SMACKDOWN"},
	{Name: "World Heavyweight Women Champion", Image: "./visuals/Championships/worldheavyweightwomen.png", BrandName: "SMACKDOWN"},
	{Name: "Intercontinental Champion", Image: "./visuals/Championships/intercontinentalmen.png", BrandName: "SMACKDOWN"},
	{Name: "Intercontinental Women Champion", Image: "./visuals/Championships/intercontinentalwomen.png", BrandName: "SMACKDOWN"},
	{Name: "World Tag Team Champions", Image: "./visuals/Championships/worldtagteam.png", BrandName: "SMACKDOWN"},
	{Name: "NXT Champion", Image: "./visuals/Championships/nxtmen.png", BrandName: "NXT"},
	{Name: "NXT Women Champion", Image: "./visuals/Championships/nxtwomen.png", BrandName: "NXT"},
	{Name: "NXT North American Champion", Image: "./visuals/Championships/northamericanmen.png", BrandName: "NXT"},
	{Name: "NXT North American Women Champion", Image: "./visuals/Championships/northamericanwomen.png", BrandName: "NXT"},
	{Name: "NXT Tag Team Champions", Image: "./visuals/Championships/nxttagteam.png", BrandName: "NXT"},
}

var Shows = []Show{
	{Name: "Monday Night RAW", BrandName: "RAW", Type: domain.ShowWeekly, Valuation: 80},
	{Name: "Friday Night SmackDown", BrandName: "SMACKDOWN", Type: domain.ShowWeekly, Valuation: 85},
	{Name: "NXT", BrandName: "NXT", Type: domain.ShowWeekly, Valuation: 75},
	{Name: "WrestleMania", BrandName: domain.BrandShared, Type: domain.ShowPLE, Valuation: 95},
}

var Wrestlers = []Wrestler{
	{Name: "Seth Rollins", BrandName: "RAW", Gender: domain.GenderMale, Alignment: domain.AlignmentFace, Rating: 92, HoldsTitleNames: []string{"WWE Champion"}, Image: "./visuals/Wrestlers/sethrollins.png", Avatar: "./visuals/Avatars/sethrollins.png"},
	{Name: "CM Punk", BrandName: "RAW", Gender: domain.GenderMale, Alignment: domain.AlignmentFace, Rating: 90, Image: "./visuals/Wrestlers/cmpunk.png", Avatar: "./visuals/Avatars/cmpunk.png"},
	{Name: "Sami Zayn", BrandName: "RAW", Gender: domain.GenderMale, Alignment: domain.AlignmentFace, Rating: 86, HoldsTitleNames: []string{"United States Champion"}, Image: "./visuals/Wrestlers/samizayn.png", Avatar: "./visuals/Avatars/samizayn.png"},
	{Name: "Becky Lynch", BrandName: "RAW", Gender: domain.GenderFemale, Alignment: domain.AlignmentFace, Rating: 91, HoldsTitleNames: []string{"United States Women Champion"}, Image: "./visuals/Wrestlers/beckylynch.png", Avatar: "./visuals/Avatars/beckylynch.png"},
	{Name: "Rhea Ripley", BrandName: "RAW", Gender: domain.GenderFemale, Alignment: domain.AlignmentHeel, Rating: 93, Faction: "The Judgment Day", HoldsTitleNames: []string{"WWE Women Champion"}, Image: "./visuals/Wrestlers/rhearipley.png", Avatar: "./visuals/Avatars/rhearipley.png"},
	{Name: "Damian Priest", BrandName: "RAW", Gender: domain.GenderMale, Alignment: domain.AlignmentHeel, Rating: 87, Faction: "The Judgment Day", Image: "./visuals/Wrestlers/damianpriest.png", Avatar: "./visuals/Avatars/damianpriest.png"},
	{Name: "Finn Balor", BrandName: "RAW", Gender: domain.GenderMale, Alignment: domain.AlignmentHeel, Rating: 88, Faction: "The Judgment Day", HoldsTitleNames: []string{"WWE Tag Team Champions"}, Image: "./visuals/Wrestlers/finnbalor.png", Avatar: "./visuals/Avatars/finnbalor.png"},
	{Name: "JD McDonagh", BrandName: "RAW", Gender: domain.GenderMale, Alignment: domain.AlignmentHeel, Rating: 82, Faction: "The Judgment Day", HoldsTitleNames: []string{"WWE Tag Team Champions"}, Image: "./visuals/Wrestlers/jdmcdonagh.png", Avatar: "./visuals/Avatars/jdmcdonagh.png"},

	{Name: "Cody Rhodes", BrandName: "SMACKDOWN", Gender: domain.GenderMale, Alignment: domain.AlignmentFace, Rating: 94, HoldsTitleNames: []string{"World Heavyweight Champion"}, Image: "./visuals/Wrestlers/codyrhodes.png", Avatar: "./visuals/Avatars/codyrhodes.png"},
	{Name: "Bianca Belair", BrandName: "SMACKDOWN", Gender: domain.GenderFemale, Alignment: domain.AlignmentFace, Rating: 92, HoldsTitleNames: []string{"World Heavyweight Women Champion"}, Image: "./visuals/Wrestlers/biancabelair.png", Avatar: "./visuals/Avatars/biancabelair.png"},
	{Name: "LA Knight", BrandName: "SMACKDOWN", Gender: domain.GenderMale, Alignment: domain.AlignmentFace, Rating: 85, HoldsTitleNames: []string{"Intercontinental Champion"}, Image: "./visuals/Wrestlers/laknight.png", Avatar: "./visuals/Avatars/laknight.png"},
	{Name: "Chelsea Green", BrandName: "SMACKDOWN", Gender: domain.GenderFemale, Alignment: domain.AlignmentHeel, Rating: 80, HoldsTitleNames: []string{"Intercontinental Women Champion"}, Image: "./visuals/Wrestlers/chelseagreen.png", Avatar: "./visuals/Avatars/chelseagreen.png"},
	{Name: "Montez Ford", BrandName: "SMACKDOWN", Gender: domain.GenderMale, Alignment: domain.AlignmentFace, Rating: 84, Faction: "The Street Profits", HoldsTitleNames: []string{"World Tag Team Champions"}, Image: "./visuals/Wrestlers/montezford.png", Avatar: "./visuals/Avatars/montezford.png"},
	{Name: "Angelo Dawkins", BrandName: "SMACKDOWN", Gender: domain.GenderMale, Alignment: domain.AlignmentFace, Rating: 83, Faction: "The Street Profits", HoldsTitleNames: []string{"World Tag Team Champions"}, Image: "./visuals/Wrestlers/angelodawkins.png", Avatar: "./visuals/Avatars/angelodawkins.png"},

	{Name: "Oba Femi", BrandName: "NXT", Gender: domain.GenderMale, Alignment: domain.AlignmentHeel, Rating: 88, HoldsTitleNames: []string{"NXT Champion"}, Image: "./visuals/Wrestlers/obafemi.png", Avatar: "./visuals/Avatars/obafemi.png"},
	{Name: "Roxanne Perez", BrandName: "NXT", Gender: domain.GenderFemale, Alignment: domain.AlignmentHeel, Rating: 86, HoldsTitleNames: []string{"NXT Women Champion"}, Image: "./visuals/Wrestlers/roxanneperez.png", Avatar: "./visuals/Avatars/roxanneperez.png"},
	{Name: "Ricky Saints", BrandName: "NXT", Gender: domain.GenderMale, Alignment: domain.AlignmentFace, Rating: 84, HoldsTitleNames: []string{"NXT North American Champion"}, Image: "./visuals/Wrestlers/rickysaints.png", Avatar: "./visuals/Avatars/rickysaints.png"},
	{Name: "Kelani Jordan", BrandName: "NXT", Gender: domain.GenderFemale, Alignment: domain.AlignmentFace, Rating: 81, HoldsTitleNames: []string{"NXT North American Women Champion"}, Image: "./visuals/Wrestlers/kelanijordan.png", Avatar: "./visuals/Avatars/kelanijordan.png"},
	{Name: "Nathan Frazer", BrandName: "NXT", Gender: domain.GenderMale, Alignment: domain.AlignmentFace, Rating: 83, Faction: "Fraxiom", HoldsTitleNames: []string{"NXT Tag Team Champions"}, Image: "./visuals/Wrestlers/nathanfrazer.png", Avatar: "./visuals/Avatars/nathanfrazer.png"},
	{Name: "Axiom", BrandName: "NXT", Gender: domain.GenderMale, Alignment: domain.AlignmentFace, Rating: 83, Faction: "Fraxiom", HoldsTitleNames: []string{"NXT Tag Team Champions"}, Image: "./visuals/Wrestlers/axiom.png", Avatar: "./visuals/Avatars/axiom.png"},
}

// WeeklyShowName returns the catalog weekly show name for a brand, used
// to name weekly drafts saved without an explicit event name.
func WeeklyShowName(brandName string) (string, bool) {
	for _, s := range Shows {
		if s.Type == domain.ShowWeekly && s.BrandName == brandName {
			return s.Name, true
		}
	}
	return "", false
}
