package model

const (
	SportFootball   = "Football"
	SportBasketball = "Basketball"
	SportTennis     = "Tennis"
	SportBaseball   = "Baseball"
	SportSoccer     = "Soccer"
	SportGolf       = "Golf"
	SportOther      = "Other"
)

type SportType struct {
	Name        string
	Description string
}

var SportTypes = []SportType{
	{Name: SportFootball, Description: "American football coverage"},
	{Name: SportBasketball, Description: "Basketball leagues and games"},
	{Name: SportTennis, Description: "Tennis tournaments and players"},
	{Name: SportBaseball, Description: "Baseball news and analysis"},
	{Name: SportSoccer, Description: "Soccer clubs and competitions"},
	{Name: SportGolf, Description: "Golf tours and championships"},
	{Name: SportOther, Description: "Everything else"},
}

// ValidSport reports whether the name is a known sport category.
func ValidSport(name string) bool {
	for _, s := range SportTypes {
		if s.Name == name {
			return true
		}
	}
	return false
}
