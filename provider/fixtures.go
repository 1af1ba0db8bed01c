package provider

import "github.com/echolytics/persona-engine/core"

// fixtureRecords builds the demo dataset. Two fully fleshed-out profiles:
// a hobbyist (running, PC building, pizza) and a data scientist (career,
// Python, cats).
func fixtureRecords() map[string]*core.ActivityRecord {
	return map[string]*core.ActivityRecord{
		"kojied": {
			Username: "kojied",
			Posts: []core.Post{
				{
					Title:     "Just finished my first marathon!",
					Content:   "After 6 months of training, I finally completed my first marathon in 4:15. The feeling is incredible! Started running during the pandemic as a way to stay active and it became my passion.",
					Subreddit: "running",
					Score:     245,
					Created:   "2024-01-15",
					URL:       "https://reddit.com/r/running/post1",
				},
				{
					Title:     "Best budget gaming setup for 2024?",
					Content:   "Looking to upgrade my gaming setup on a budget. Currently have a GTX 1060 and wondering if I should upgrade GPU first or get a new monitor. Mainly play FPS games and some RPGs.",
					Subreddit: "buildapc",
					Score:     89,
					Created:   "2024-01-10",
					URL:       "https://reddit.com/r/buildapc/post2",
				},
				{
					Title:     "Homemade pizza attempt #47",
					Content:   "Still trying to perfect my pizza dough recipe. This time I tried a 72-hour cold fermentation and the results were much better! The crust had great flavor and texture.",
					Subreddit: "Pizza",
					Score:     156,
					Created:   "2024-01-08",
					URL:       "https://reddit.com/r/Pizza/post3",
				},
			},
			Comments: []core.Comment{
				{
					Content:   "I had the same issue with my build. Make sure your PSU can handle the new GPU before upgrading. I learned this the hard way!",
					Subreddit: "buildapc",
					Score:     23,
					Created:   "2024-01-12",
					Context:   "GPU upgrade discussion",
				},
				{
					Content:   "The key is really in the hydration level of your dough. I've found 65-70% hydration works best for home ovens. Also, try adding a bit of olive oil for better texture.",
					Subreddit: "Pizza",
					Score:     45,
					Created:   "2024-01-09",
					Context:   "Pizza dough tips",
				},
				{
					Content:   "Congrats on the marathon! I'm training for my first half marathon right now. Any tips for dealing with knee pain during long runs?",
					Subreddit: "running",
					Score:     12,
					Created:   "2024-01-16",
					Context:   "Marathon training discussion",
				},
				{
					Content:   "This game has been consuming my life for the past month. The story is incredible and the graphics are stunning even on my older setup.",
					Subreddit: "gaming",
					Score:     8,
					Created:   "2024-01-14",
					Context:   "Game review discussion",
				},
			},
			Subreddits: []string{"running", "buildapc", "Pizza", "gaming", "fitness", "cooking"},
			AccountAge: "3 years",
			Karma:      2847,
		},
		"Hungry-Move-6603": {
			Username: "Hungry-Move-6603",
			Posts: []core.Post{
				{
					Title:     "Finally got my dream job in data science!",
					Content:   "After 8 months of job searching and countless interviews, I finally landed a data scientist position at a tech startup. The interview process was intense but worth it. For anyone struggling with the job search, don't give up!",
					Subreddit: "datascience",
					Score:     342,
					Created:   "2024-01-20",
					URL:       "https://reddit.com/r/datascience/post1",
				},
				{
					Title:     "My cat's reaction to the new automatic feeder",
					Content:   "Bought an automatic feeder thinking it would make feeding easier. My cat just sits next to it all day waiting for food to appear. I think I've created a monster.",
					Subreddit: "cats",
					Score:     1247,
					Created:   "2024-01-18",
					URL:       "https://reddit.com/r/cats/post2",
				},
				{
					Title:     "Best Python libraries for time series analysis?",
					Content:   "Working on a project involving stock price prediction and looking for recommendations on Python libraries. Currently using pandas and numpy but wondering if there are better specialized tools.",
					Subreddit: "Python",
					Score:     78,
					Created:   "2024-01-15",
					URL:       "https://reddit.com/r/Python/post3",
				},
			},
			Comments: []core.Comment{
				{
					Content:   "I use Prophet for most of my time series work. It's really good at handling seasonality and holidays. ARIMA is also solid for more traditional approaches.",
					Subreddit: "MachineLearning",
					Score:     34,
					Created:   "2024-01-17",
					Context:   "Time series analysis discussion",
				},
				{
					Content:   "My cat does the exact same thing! I think they're just fascinated by the mechanical sounds. Mine also tries to 'help' by pawing at the dispenser.",
					Subreddit: "cats",
					Score:     67,
					Created:   "2024-01-19",
					Context:   "Cat behavior discussion",
				},
				{
					Content:   "The key to data science interviews is practicing coding problems and being able to explain your thought process clearly. Also, have real projects to show, not just coursework.",
					Subreddit: "cscareerquestions",
					Score:     89,
					Created:   "2024-01-21",
					Context:   "Job interview advice",
				},
				{
					Content:   "I've been learning React for the past few months and it's been a game changer for my data visualization projects. The component-based approach makes everything so much cleaner.",
					Subreddit: "webdev",
					Score:     15,
					Created:   "2024-01-16",
					Context:   "Web development discussion",
				},
			},
			Subreddits: []string{"datascience", "cats", "Python", "MachineLearning", "cscareerquestions", "webdev", "programming"},
			AccountAge: "2 years",
			Karma:      4521,
		},
	}
}
