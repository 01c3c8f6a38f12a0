// ABOUTME: Service widget models: weather, prayer times, currency, pharmacy, standings
// ABOUTME: These are decoded directly and carry no normalization invariants

package domain

// Weather is one forecast entry for a city.
type Weather struct {
	Date        string `json:"dt"`
	Degree      int    `json:"degree"`
	Description string `json:"desc"`
	Pressure    string `json:"pressure"`
	Humidity    int    `json:"humidity"`
	Image       string `json:"image"`
	Icon        string `json:"icon"`
	Wind        string `json:"wind"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Location    string `json:"location"`
	Low         int    `json:"low"`
	High        int    `json:"high"`
}

// PrayerTimes are the daily prayer times for a city or district.
type PrayerTimes struct {
	Date      string `json:"tarih"`
	LongDate  string `json:"tarih_uzun"`
	HijriDate string `json:"hicri_tarih"`
	Imsak     string `json:"imsak"`
	Sunrise   string `json:"gunes"`
	Noon      string `json:"ogle"`
	Afternoon string `json:"ikindi"`
	Evening   string `json:"aksam"`
	Night     string `json:"yatsi"`
}

// Currency is one exchange rate.
type Currency struct {
	Name       string  `json:"name"`
	Code       string  `json:"code"`
	Buying     float64 `json:"buying"`
	BuyingStr  string  `json:"buyingstr"`
	Selling    float64 `json:"selling"`
	SellingStr string  `json:"sellingstr"`
	Rate       float64 `json:"rate"`
	Time       string  `json:"time"`
	Date       string  `json:"date"`
	DateTime   string  `json:"datetime"`
	Calculated float64 `json:"calculated"`
}

// Direction returns 1, -1 or 0 for a rising, falling or stable rate.
func (c Currency) Direction() int {
	switch {
	case c.Rate > 0:
		return 1
	case c.Rate < 0:
		return -1
	default:
		return 0
	}
}

// Pharmacy is an on-duty pharmacy.
type Pharmacy struct {
	Name     string `json:"name"`
	District string `json:"dist,omitempty"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Location string `json:"loc,omitempty"`
}

// League describes a football league.
type League struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Logo    string `json:"logo,omitempty"`
	Flag    string `json:"flag,omitempty"`
}

// TeamStanding is one row of a league table.
type TeamStanding struct {
	Rank           int    `json:"rank"`
	Team           string `json:"team"`
	Logo           string `json:"logo,omitempty"`
	Form           string `json:"form,omitempty"`
	Played         int    `json:"played"`
	Won            int    `json:"win"`
	Drawn          int    `json:"draw"`
	Lost           int    `json:"lose"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsagainst"`
	GoalDifference int    `json:"goalsDiff"`
	Points         int    `json:"points"`
	Description    string `json:"description,omitempty"`
}

// Standings is a league table.
type Standings struct {
	League    League         `json:"league"`
	Standings []TeamStanding `json:"standings"`
}

// Settings are the remote app settings.
type Settings struct {
	MobileLogo string `json:"logo_mobil,omitempty"`
}
