package content

const (
	cabinet = "https://eyifvsv.stripocdn.email/content/guids/CABINET_ca0715bd41167d78d8998eff7cc81b8d6196f4289576108dfc827ce6ec8fc9fa/images/"
	portal  = "https://porrtal.porr-group.com"

	// DefaultFont is the font family of the seed newsletter.
	DefaultFont = "'trebuchet ms', tahoma, sans-serif"

	// PlaceholderLink marks a link that was never filled in.
	PlaceholderLink = "#"

	placeholderImage = "https://via.placeholder.com/270x180/143e70/feed01?text=Nowy"
)

// Default returns the seed newsletter. Each call builds a new value.
func Default() Newsletter {
	return Newsletter{
		IssueNumber:      "Espinacz nr 4/2026",
		LogoURL:          cabinet + "_porr_rgb_screenpng.png",
		MainTitle:        "Wiecha w górę na budynku serwerowni FRA32",
		MainDescription:  "Nasze zespoły PORR Polska i PORR Niemcy pracujące ramię w ramię przy budowie centrum danych FRA32 w podfrankfurckim Raunheim osiągnęły właśnie kolejny kamień milowy!",
		MainImage:        cabinet + "linkedin_29.jpg",
		MainLink:         portal,
		VideoThumbnail:   "https://eyifvsv.stripocdn.email/content/guids/videoImgGuid/images/image1769786788858299.jpeg",
		VideoLink:        "https://youtu.be/Ivbd9yoec3k",
		VideoTitle:       "Modernizacja LK131 LOT A dobiegła końca",
		VideoDescription: "Ten największy w naszej historii kontrakt kolejowy trafił w ręce najlepszej Drużyny.",
		VideoReadMore:    portal,
		FooterTitle:      "Cieszymy się, że nas czytasz!",
		FooterLeft:       "Espinacz to nasz tygodniowy newsletter firmowy.",
		FooterRight:      "Masz pomysł lub uwagi? Napisz do nas!",
		ContactEmail:     "komunikacja@porr.pl",
		FacebookURL:      "https://www.facebook.com/PorrSA",
		LinkedInURL:      "https://www.linkedin.com/company/28978817/",
		YouTubeURL:       "http://www.youtube.com/@PORR_Polska",

		PrimaryColor:    "#143e70",
		AccentColor:     "#feed01",
		ButtonTextColor: "#143e70",
		TextColor:       "#143e70",
		BgColor:         "#fafafa",
		FontFamily:      DefaultFont,

		ShowVideo:      true,
		ShowSocial:     true,
		ShowViewOnline: true,
		ShowFeedback:   true,

		FeedbackTitle:      "Jak oceniasz ten newsletter?",
		FeedbackSubtitle:   "Twoja opinia pomoże nam tworzyć lepsze treści!",
		FeedbackBgColor:    "#f0f4f8",
		FeedbackSurveyText: "Wypełnij pełną ankietę",
		FeedbackStyle:      StyleEmoji,
		FeedbackOptions: []FeedbackOption{
			{ID: 1, Emoji: "😍", Label: "Świetny!", Link: PlaceholderLink},
			{ID: 2, Emoji: "😊", Label: "Dobry", Link: PlaceholderLink},
			{ID: 3, Emoji: "😐", Label: "OK", Link: PlaceholderLink},
			{ID: 4, Emoji: "😕", Label: "Słaby", Link: PlaceholderLink},
			{ID: 5, Emoji: "😞", Label: "Zły", Link: PlaceholderLink},
		},

		Articles: []Article{
			{ID: 1, Title: "Kolejny raz gramy z WOŚP", Description: "Nasza aukcja już śmiga na Allegro! Można wylicytować wizytę na placu budowy.", Image: cabinet + "image.png", Link: portal},
			{ID: 2, Title: "Na S19 zima nas nie zatrzyma!", Description: "Oddaliśmy do ruchu 9,3-km odcinek ekspresowej S19 👏", Image: cabinet + "image.jpeg", Link: portal},
			{ID: 3, Title: "Infrastruktura dla lotniska w Łasku", Description: "Misja trudna, ale daliśmy radę 💪", Image: cabinet + "image_SYG.jpeg", Link: portal},
			{ID: 4, Title: "Young Energy Europe", Description: "Rozwijamy zielone kompetencje!", Image: cabinet + "image_50O.png", Link: portal},
		},

		NextID:         5,
		NextFeedbackID: 6,
	}
}
