// Package content holds the static passage catalog.
//
// Passage ids follow the l<level>-<two-digit-sequence> convention. The id is
// a display and debugging aid; level filtering goes through the Level field.
package content

import "github.com/verte-zerg/typegrow/internal/model"

var level1 = []model.Passage{
	{ID: "l1-01", Level: 1, Title: "The Cat", Content: "The cat sat on the mat. The cat is fat.", HasAudio: true},
	{ID: "l1-02", Level: 1, Title: "A Dog", Content: "A dog ran in the park. The dog is happy.", HasAudio: true},
	{ID: "l1-03", Level: 1, Title: "The Sun", Content: "The sun is hot. It shines all day long.", HasAudio: true},
	{ID: "l1-04", Level: 1, Title: "My Hat", Content: "I have a red hat. It fits on my head.", HasAudio: true},
	{ID: "l1-05", Level: 1, Title: "The Frog", Content: "A frog can hop. It hops on a log.", HasAudio: true},
	{ID: "l1-06", Level: 1, Title: "A Cup", Content: "I drink from a cup. The cup has water.", HasAudio: true},
	{ID: "l1-07", Level: 1, Title: "The Bird", Content: "A bird can fly. It has two wings.", HasAudio: true},
	{ID: "l1-08", Level: 1, Title: "My Bed", Content: "I sleep in my bed. The bed is soft.", HasAudio: true},
	{ID: "l1-09", Level: 1, Title: "A Fish", Content: "A fish swims in water. It has fins.", HasAudio: true},
	{ID: "l1-10", Level: 1, Title: "The Tree", Content: "A tree is tall. It has green leaves.", HasAudio: true},
}

var level2 = []model.Passage{
	{ID: "l2-01", Level: 2, Title: "Morning Walk", Content: "Every morning I walk to school. The path goes through a small park with tall trees and singing birds.", HasAudio: true},
	{ID: "l2-02", Level: 2, Title: "The Library", Content: "The library is a quiet place. I like to read books about animals and far away places.", HasAudio: true},
	{ID: "l2-03", Level: 2, Title: "My Garden", Content: "We have a garden behind our house. Mom grows tomatoes and I help water the flowers.", HasAudio: true},
	{ID: "l2-04", Level: 2, Title: "The Beach", Content: "Last summer we went to the beach. I built a sandcastle and found pretty shells.", HasAudio: true},
	{ID: "l2-05", Level: 2, Title: "Rain Day", Content: "When it rains I stay inside. I like to watch the drops race down the window.", HasAudio: true},
	{ID: "l2-06", Level: 2, Title: "My Friend", Content: "My best friend lives next door. We ride bikes together and share our snacks.", HasAudio: true},
	{ID: "l2-07", Level: 2, Title: "The Zoo", Content: "At the zoo I saw lions and zebras. The monkeys made funny faces at us.", HasAudio: true},
	{ID: "l2-08", Level: 2, Title: "Breakfast", Content: "For breakfast I eat toast with jam. Dad makes the best scrambled eggs.", HasAudio: true},
	{ID: "l2-09", Level: 2, Title: "Night Sky", Content: "At night I look at the stars. The moon glows bright like a silver coin.", HasAudio: true},
	{ID: "l2-10", Level: 2, Title: "The Puppy", Content: "Our new puppy is small and brown. He likes to chase his tail around.", HasAudio: true},
	{ID: "l2-11", Level: 2, Title: "Winter Snow", Content: "Snow covers the ground in winter. We build snowmen and have snowball fights.", HasAudio: true},
	{ID: "l2-12", Level: 2, Title: "The Kitchen", Content: "Mom cooks dinner in the kitchen. The smell of fresh bread fills the house.", HasAudio: true},
	{ID: "l2-13", Level: 2, Title: "School Bus", Content: "The yellow bus picks me up each day. I sit with my friend near the back.", HasAudio: true},
	{ID: "l2-14", Level: 2, Title: "Art Class", Content: "In art class we paint with bright colors. I made a picture of my family.", HasAudio: true},
	{ID: "l2-15", Level: 2, Title: "The Farm", Content: "Grandpa has a farm with cows and chickens. I help collect eggs every summer.", HasAudio: true},
}

var level3 = []model.Passage{
	{ID: "l3-01", Level: 3, Title: "The Tortoise and the Hare", Author: "Aesop", Content: "A hare once laughed at a slow tortoise. The tortoise challenged him to a race. The hare ran fast then took a nap. The tortoise kept going and won the race. Slow and steady wins the race.", HasAudio: true},
	{ID: "l3-02", Level: 3, Title: "The Fox and the Grapes", Author: "Aesop", Content: "A hungry fox saw grapes hanging high on a vine. He jumped and jumped but could not reach them. Finally he walked away saying the grapes were probably sour anyway.", HasAudio: true},
	{ID: "l3-03", Level: 3, Title: "Twinkle Star", Author: "Jane Taylor", Content: "Twinkle, twinkle, little star, how I wonder what you are. Up above the world so high, like a diamond in the sky. When the blazing sun is gone, when he nothing shines upon.", HasAudio: true},
	{ID: "l3-04", Level: 3, Title: "The Wind", Author: "Christina Rossetti", Content: "Who has seen the wind? Neither I nor you. But when the leaves hang trembling, the wind is passing through. Who has seen the wind? Neither you nor I. But when the trees bow down their heads, the wind is passing by.", HasAudio: true},
	{ID: "l3-05", Level: 3, Title: "The Ant and the Grasshopper", Author: "Aesop", Content: "All summer the ant worked hard storing food. The grasshopper played and sang in the sun. When winter came the ant had plenty to eat. The hungry grasshopper learned that it is best to prepare for days of need.", HasAudio: true},
	{ID: "l3-06", Level: 3, Title: "The Lion and the Mouse", Author: "Aesop", Content: "A lion caught a little mouse. The mouse begged for mercy and promised to help the lion someday. The lion laughed but let him go. Later the mouse freed the lion from a hunters net. Little friends may prove to be great friends.", HasAudio: true},
	{ID: "l3-07", Level: 3, Title: "Bed in Summer", Author: "R.L. Stevenson", Content: "In winter I get up at night and dress by yellow candle light. In summer quite the other way, I have to go to bed by day. I have to go to bed and see the birds still hopping on the tree.", HasAudio: true},
	{ID: "l3-08", Level: 3, Title: "The Crow and the Pitcher", Author: "Aesop", Content: "A thirsty crow found a pitcher with water at the bottom. His beak could not reach it. He dropped pebbles into the pitcher one by one. The water rose until he could drink. Necessity is the mother of invention.", HasAudio: true},
	{ID: "l3-09", Level: 3, Title: "Rain", Author: "R.L. Stevenson", Content: "The rain is raining all around. It falls on field and tree. It rains on the umbrellas here and on the ships at sea. From house to house the rain goes too and falls on me and you.", HasAudio: true},
	{ID: "l3-10", Level: 3, Title: "The Boy Who Cried Wolf", Author: "Aesop", Content: "A shepherd boy cried wolf to trick the villagers. They came running but found no wolf. He did it again and again. When a real wolf came no one believed him. Nobody believes a liar even when he tells the truth.", HasAudio: true},
	{ID: "l3-11", Level: 3, Title: "The Swing", Author: "R.L. Stevenson", Content: "How do you like to go up in a swing, up in the air so blue? Oh, I do think it the pleasantest thing ever a child can do! Up in the air and over the wall, till I can see so wide.", HasAudio: true},
	{ID: "l3-12", Level: 3, Title: "The Dog and His Shadow", Author: "Aesop", Content: "A dog carrying meat crossed a bridge over a stream. He saw his reflection and thought it was another dog with bigger meat. He snapped at the reflection and lost his own meat in the water. Greed often leads to loss.", HasAudio: true},
	{ID: "l3-13", Level: 3, Title: "My Shadow", Author: "R.L. Stevenson", Content: "I have a little shadow that goes in and out with me. And what can be the use of him is more than I can see. He is very, very like me from the heels up to the head. And I see him jump before me when I jump into my bed.", HasAudio: true},
	{ID: "l3-14", Level: 3, Title: "The North Wind", Author: "Traditional", Content: "The North Wind doth blow and we shall have snow. And what will the robin do then, poor thing? He will sit in a barn and keep himself warm and hide his head under his wing, poor thing.", HasAudio: true},
	{ID: "l3-15", Level: 3, Title: "The Goose and Golden Eggs", Author: "Aesop", Content: "A farmer had a goose that laid golden eggs. He grew greedy and killed the goose to get all the gold at once. Inside he found nothing. He lost his daily golden egg forever. Those who want too much often lose everything.", HasAudio: true},
	{ID: "l3-16", Level: 3, Title: "Time to Rise", Author: "R.L. Stevenson", Content: "A birdie with a yellow bill hopped upon the window sill. Cocked his shining eye and said, Aint you shamed, you sleepy head? The morning sun is bright and warm. Rise and greet the brand new morn.", HasAudio: true},
	{ID: "l3-17", Level: 3, Title: "The Bundle of Sticks", Author: "Aesop", Content: "A father gave his quarreling sons a bundle of sticks to break. None could break the bundle. Then he untied it and they easily broke the sticks one by one. United we stand, divided we fall.", HasAudio: true},
	{ID: "l3-18", Level: 3, Title: "Foreign Lands", Author: "R.L. Stevenson", Content: "Up into the cherry tree who should climb but little me? I held the trunk with both my hands and looked abroad on foreign lands. I saw the next door gardens lie, adorned with flowers, before my eye.", HasAudio: true},
	{ID: "l3-19", Level: 3, Title: "The Town Mouse", Author: "Aesop", Content: "A town mouse visited his cousin in the country. The simple food was boring. He invited the country mouse to town for fine food. But cats and dangers made them run. Better a simple life in peace than luxury with fear.", HasAudio: true},
	{ID: "l3-20", Level: 3, Title: "Whole Duty of Children", Author: "R.L. Stevenson", Content: "A child should always say whats true and speak when he is spoken to. And behave mannerly at table, at least as far as he is able. Be gentle and kind in all you do. This is the whole duty of children.", HasAudio: true},
}

var level4 = []model.Passage{
	{ID: "l4-01", Level: 4, Title: "The Oak and the Reed", Author: "Aesop", Content: "A mighty oak stood proudly by the river, while a slender reed bent with every breeze. The oak mocked the reed for its weakness. One night a great storm tore the oak from its roots, but the reed bowed low and survived. Those who bend do not break.", HasAudio: true},
	{ID: "l4-02", Level: 4, Title: "The Milkmaid's Dream", Author: "Aesop", Content: "A milkmaid carried a pail of milk upon her head and dreamed of all it would buy: eggs, then chickens, then a fine new dress. Lost in her plans, she tossed her head and the milk spilled to the ground. Do not count your chickens before they are hatched.", HasAudio: true},
	{ID: "l4-03", Level: 4, Title: "The Land of Counterpane", Author: "R.L. Stevenson", Content: "When I was sick and lay abed, I had two pillows at my head, and all my toys beside me lay to keep me happy all the day. And sometimes for an hour or so I watched my leaden soldiers go, with different uniforms and drills, among the bedclothes, through the hills.", HasAudio: true},
	{ID: "l4-04", Level: 4, Title: "The Wolf and the Crane", Author: "Aesop", Content: "A wolf had a bone stuck in his throat and promised a reward to any who would remove it. A crane put her long beak down his throat and drew out the bone. When she asked for her reward, the wolf grinned and said that letting her head leave his mouth unharmed was reward enough.", HasAudio: true},
	{ID: "l4-05", Level: 4, Title: "The Village Blacksmith", Author: "Longfellow", Content: "Under a spreading chestnut tree the village smithy stands; the smith, a mighty man is he, with large and sinewy hands. His hair is crisp, and black, and long; his face is like the tan. His brow is wet with honest sweat; he earns whatever he can.", HasAudio: true},
	{ID: "l4-06", Level: 4, Title: "The Four Oxen", Author: "Aesop", Content: "Four oxen grazed together in a field, and whenever the lion attacked, they turned their tails to one another so that every side showed horns. At last they quarreled and each went to a corner alone. Then the lion took them one by one, and soon made an end of all four.", HasAudio: true},
	{ID: "l4-07", Level: 4, Title: "At the Seaside", Author: "R.L. Stevenson", Content: "When I was down beside the sea, a wooden spade they gave to me to dig the sandy shore. My holes were empty like a cup. In every hole the sea came up, till it could come no more. The waves rolled in from far away and splashed the rocks with silver spray.", HasAudio: true},
	{ID: "l4-08", Level: 4, Title: "The Fir Tree", Author: "Andersen", Content: "Out in the forest stood a pretty little fir tree. It had plenty of sun and fresh air, and older trees around it, but the little tree was not content. It longed to be tall like the others. It thought nothing of the warm sunshine and the birds that sang among its branches.", HasAudio: true},
	{ID: "l4-09", Level: 4, Title: "The Travelers and the Bear", Author: "Aesop", Content: "Two travelers met a bear upon the road. One climbed a tree at once; the other fell flat and held his breath. The bear sniffed at his ear and lumbered away. When the first man climbed down, he asked what the bear had whispered. Never trust a friend who deserts you in danger, said the other.", HasAudio: true},
	{ID: "l4-10", Level: 4, Title: "Windy Nights", Author: "R.L. Stevenson", Content: "Whenever the moon and stars are set, whenever the wind is high, all night long in the dark and wet, a man goes riding by. Late in the night when the fires are out, why does he gallop and gallop about? By at the gallop goes he, and then by he comes back at the gallop again.", HasAudio: true},
	{ID: "l4-11", Level: 4, Title: "The Honest Woodcutter", Author: "Aesop", Content: "A woodcutter dropped his axe into a deep pool. A water spirit rose and offered him first a golden axe, then a silver one. Each time he shook his head and said his axe was plain iron. Pleased with his honesty, the spirit gave him all three. Honesty is rewarded in the end.", HasAudio: true},
	{ID: "l4-12", Level: 4, Title: "The Cow", Author: "R.L. Stevenson", Content: "The friendly cow all red and white, I love with all my heart. She gives me cream with all her might, to eat with apple tart. She wanders lowing here and there, and yet she cannot stray, all in the pleasant open air, the pleasant light of day.", HasAudio: true},
	{ID: "l4-13", Level: 4, Title: "The Hare With Many Friends", Author: "Aesop", Content: "A hare was popular with all the beasts, who claimed to be her friends. One day she heard the hounds approaching and asked each friend to carry her to safety. The horse, the bull, the goat, and the sheep each had an excuse. He that has many friends has no friends.", HasAudio: true},
	{ID: "l4-14", Level: 4, Title: "The Lamplighter", Author: "R.L. Stevenson", Content: "My tea is nearly ready and the sun has left the sky. It is time to take the window to see Leerie going by, for every night at teatime and before you take your seat, with lantern and with ladder he comes posting up the street to light the lamps that guard us while we sleep.", HasAudio: true},
	{ID: "l4-15", Level: 4, Title: "The Peacock's Complaint", Author: "Aesop", Content: "The peacock complained to the goddess that the nightingale had a sweet voice while he had none. You have beauty and size, she replied. Each bird is given its own gift. The eagle has strength, the parrot speech, and the dove peace. Be content with your own portion.", HasAudio: true},
	{ID: "l4-16", Level: 4, Title: "From a Railway Carriage", Author: "R.L. Stevenson", Content: "Faster than fairies, faster than witches, bridges and houses, hedges and ditches, and charging along like troops in a battle, all through the meadows the horses and cattle. All of the sights of the hill and the plain fly as thick as driving rain.", HasAudio: true},
	{ID: "l4-17", Level: 4, Title: "The Two Pots", Author: "Aesop", Content: "Two pots, one of brass and one of clay, were carried down a river by a flood. The brass pot urged the clay pot to stay close beside him for safety. The clay pot answered that the nearness was what he feared most, for one knock together would shatter him to pieces. Equals make the best friends.", HasAudio: true},
	{ID: "l4-18", Level: 4, Title: "The Ugly Duckling", Author: "Andersen", Content: "The last egg in the nest was larger than the rest, and the bird that tumbled out was gray and clumsy. The other ducks teased him all summer and autumn. But when spring came he stretched his wings, and they carried him to a lake where he saw his own reflection: a beautiful white swan.", HasAudio: true},
	{ID: "l4-19", Level: 4, Title: "The Quarrel of the Winds", Author: "Aesop", Content: "The North Wind and the Sun quarreled about which was the stronger, and agreed to test themselves on a traveler. The wind blew with all his might, but the man only wrapped his cloak tighter. Then the sun shone warmly, and the traveler took his cloak off at once. Persuasion is better than force.", HasAudio: true},
	{ID: "l4-20", Level: 4, Title: "Autumn Fires", Author: "R.L. Stevenson", Content: "In the other gardens and all up the vale, from the autumn bonfires see the smoke trail. Pleasant summer over and all the summer flowers, the red fire blazes, the gray smoke towers. Sing a song of seasons, something bright in all: flowers in the summer, fires in the fall.", HasAudio: true},
	{ID: "l4-21", Level: 4, Title: "The Dog in the Manger", Author: "Aesop", Content: "A dog made his bed in a manger full of hay. When the oxen came home hungry from their work, he growled and snapped at them, though he could not eat the hay himself. The oxen went away hungry. Do not grudge to others what you cannot enjoy yourself.", HasAudio: true},
	{ID: "l4-22", Level: 4, Title: "The Moon", Author: "R.L. Stevenson", Content: "The moon has a face like the clock in the hall. She shines on thieves on the garden wall, on streets and fields and harbor quays, and birdies asleep in the forks of the trees. The squalling cat and the squeaking mouse, the howling dog by the door of the house, all love to be out by the light of the moon.", HasAudio: true},
	{ID: "l4-23", Level: 4, Title: "The Mice in Council", Author: "Aesop", Content: "The mice called a council to decide how to outwit the cat. A young mouse proposed hanging a bell around the cat's neck so that all would hear her coming. The plan was applauded until an old mouse rose and asked a single question. Who will bell the cat? It is easy to propose impossible remedies.", HasAudio: true},
	{ID: "l4-24", Level: 4, Title: "The Steadfast Tin Soldier", Author: "Andersen", Content: "Of five and twenty tin soldiers, the last had been cast with only one leg, yet he stood as firmly on it as the others did on two. He loved a paper dancer who also stood on one leg. Through storms and dark gutters and the belly of a fish, his heart never wavered.", HasAudio: true},
	{ID: "l4-25", Level: 4, Title: "Happy Thought", Author: "R.L. Stevenson", Content: "The world is so full of a number of things, I am sure we should all be as happy as kings. The friendly cow, the singing kettle, the garden swing, the winter fire: every season carries its own quiet gift for those who take the time to look for it with open eyes.", HasAudio: true},
}

var level5 = []model.Passage{
	{ID: "l5-01", Level: 5, Title: "The Road Not Taken", Author: "Robert Frost", Content: "Two roads diverged in a yellow wood, and sorry I could not travel both and be one traveler, long I stood and looked down one as far as I could to where it bent in the undergrowth; then took the other, as just as fair, and having perhaps the better claim, because it was grassy and wanted wear.", HasAudio: true},
	{ID: "l5-02", Level: 5, Title: "Daffodils", Author: "Wordsworth", Content: "I wandered lonely as a cloud that floats on high over vales and hills, when all at once I saw a crowd, a host, of golden daffodils; beside the lake, beneath the trees, fluttering and dancing in the breeze. Continuous as the stars that shine and twinkle on the milky way, they stretched in never-ending line.", HasAudio: true},
	{ID: "l5-03", Level: 5, Title: "The Open Road", Author: "Walt Whitman", Content: "Afoot and light-hearted I take to the open road, healthy, free, the world before me, the long brown path before me leading wherever I choose. Henceforth I ask not good-fortune; I myself am good-fortune. Strong and content, I travel the open road.", HasAudio: true},
	{ID: "l5-04", Level: 5, Title: "The Tyger", Author: "William Blake", Content: "Tyger! Tyger! burning bright in the forests of the night, what immortal hand or eye could frame thy fearful symmetry? In what distant deeps or skies burnt the fire of thine eyes? On what wings dare he aspire? What the hand dare seize the fire?", HasAudio: true},
	{ID: "l5-05", Level: 5, Title: "A Bird Came Down", Author: "Emily Dickinson", Content: "A bird came down the walk: he did not know I saw; he bit an angle-worm in halves and ate the fellow, raw. And then he drank a dew from a convenient grass, and then hopped sidewise to the wall to let a beetle pass.", HasAudio: true},
	{ID: "l5-06", Level: 5, Title: "The Secret Garden", Author: "Burnett", Content: "One of the strange things about living in the world is that it is only now and then one is quite sure one is going to live forever. One knows it sometimes when one gets up at the tender solemn dawn-time and goes out and stands alone and throws one's head far back and looks up and up and watches the pale sky slowly changing and flushing.", HasAudio: true},
	{ID: "l5-07", Level: 5, Title: "The Eagle", Author: "Tennyson", Content: "He clasps the crag with crooked hands; close to the sun in lonely lands, ringed with the azure world, he stands. The wrinkled sea beneath him crawls; he watches from his mountain walls, and like a thunderbolt he falls.", HasAudio: true},
	{ID: "l5-08", Level: 5, Title: "Treasure Island", Author: "R.L. Stevenson", Content: "Squire Trelawney, Dr. Livesey, and the rest of these gentlemen having asked me to write down the whole particulars about Treasure Island, from the beginning to the end, keeping nothing back but the bearings of the island, and that only because there is still treasure not yet lifted, I take up my pen.", HasAudio: true},
	{ID: "l5-09", Level: 5, Title: "Fog", Author: "Carl Sandburg", Content: "The fog comes on little cat feet. It sits looking over harbor and city on silent haunches and then moves on. The morning bells ring out across the water, and the ships slide past one another like shadows in the gray half-light before the day begins.", HasAudio: true},
	{ID: "l5-10", Level: 5, Title: "The Jungle Book", Author: "Kipling", Content: "It was seven o'clock of a very warm evening in the Seeonee hills when Father Wolf woke up from his day's rest, scratched himself, yawned, and spread out his paws one after the other to get rid of the sleepy feeling in their tips. The moon shone into the mouth of the cave where they all lived.", HasAudio: true},
	{ID: "l5-11", Level: 5, Title: "Sea Fever", Author: "John Masefield", Content: "I must go down to the seas again, to the lonely sea and the sky, and all I ask is a tall ship and a star to steer her by; and the wheel's kick and the wind's song and the white sail's shaking, and a gray mist on the sea's face, and a gray dawn breaking.", HasAudio: true},
	{ID: "l5-12", Level: 5, Title: "Alice's Adventures", Author: "Lewis Carroll", Content: "Alice was beginning to get very tired of sitting by her sister on the bank, and of having nothing to do: once or twice she had peeped into the book her sister was reading, but it had no pictures or conversations in it, and what is the use of a book, thought Alice, without pictures or conversations?", HasAudio: true},
	{ID: "l5-13", Level: 5, Title: "Hope Is the Thing", Author: "Emily Dickinson", Content: "Hope is the thing with feathers that perches in the soul, and sings the tune without the words, and never stops at all, and sweetest in the gale is heard; and sore must be the storm that could abash the little bird that kept so many warm.", HasAudio: true},
	{ID: "l5-14", Level: 5, Title: "The Wind in the Willows", Author: "Grahame", Content: "The Mole had been working very hard all the morning, spring-cleaning his little home. First with brooms, then with dusters; then on ladders and steps and chairs, with a brush and a pail of whitewash; till he had dust in his throat and eyes, and splashes of whitewash all over his black fur, and an aching back and weary arms.", HasAudio: true},
	{ID: "l5-15", Level: 5, Title: "Ozymandias", Author: "Shelley", Content: "I met a traveler from an antique land who said: Two vast and trunkless legs of stone stand in the desert. Near them, on the sand, half sunk, a shattered visage lies, whose frown, and wrinkled lip, and sneer of cold command, tell that its sculptor well those passions read.", HasAudio: true},
	{ID: "l5-16", Level: 5, Title: "Black Beauty", Author: "Anna Sewell", Content: "The first place that I can well remember was a large pleasant meadow with a pond of clear water in it. Some shady trees leaned over it, and rushes and water-lilies grew at the deep end. Over the hedge on one side we looked into a plowed field, and on the other we looked over a gate at our master's house.", HasAudio: true},
	{ID: "l5-17", Level: 5, Title: "If", Author: "Kipling", Content: "If you can keep your head when all about you are losing theirs and blaming it on you; if you can trust yourself when all men doubt you, but make allowance for their doubting too; if you can wait and not be tired by waiting, or, being lied about, not deal in lies, you will be a man, my son.", HasAudio: true},
	{ID: "l5-18", Level: 5, Title: "The Railway Children", Author: "E. Nesbit", Content: "They were not railway children to begin with. I do not suppose they had ever thought about railways except as a means of getting to the pantomime, to the zoo, and to Madame Tussaud's. They were just ordinary suburban children, and they lived with their father and mother in an ordinary red-brick-fronted villa.", HasAudio: true},
	{ID: "l5-19", Level: 5, Title: "Stopping by Woods", Author: "Robert Frost", Content: "Whose woods these are I think I know. His house is in the village though; he will not see me stopping here to watch his woods fill up with snow. My little horse must think it queer to stop without a farmhouse near, between the woods and frozen lake, the darkest evening of the year.", HasAudio: true},
	{ID: "l5-20", Level: 5, Title: "Heidi", Author: "Johanna Spyri", Content: "From the old and pleasantly situated village of Mayenfeld, a footpath winds through green and shady meadows to the foot of the mountains, which on this side look down from their stern and lofty heights upon the valley below. The land grows gradually wilder as the path ascends.", HasAudio: true},
	{ID: "l5-21", Level: 5, Title: "The Brook", Author: "Tennyson", Content: "I come from haunts of coot and hern, I make a sudden sally and sparkle out among the fern, to bicker down a valley. By thirty hills I hurry down, or slip between the ridges, by twenty thorpes, a little town, and half a hundred bridges. For men may come and men may go, but I go on forever.", HasAudio: true},
	{ID: "l5-22", Level: 5, Title: "Peter Pan", Author: "J.M. Barrie", Content: "All children, except one, grow up. They soon know that they will grow up, and the way Wendy knew was this. One day when she was two years old she was playing in a garden, and she plucked another flower and ran with it to her mother. I suppose she must have looked rather delightful.", HasAudio: true},
	{ID: "l5-23", Level: 5, Title: "The Arrow and the Song", Author: "Longfellow", Content: "I shot an arrow into the air; it fell to earth, I knew not where; for, so swiftly it flew, the sight could not follow it in its flight. I breathed a song into the air; it fell to earth, I knew not where; for who has sight so keen and strong that it can follow the flight of song?", HasAudio: true},
	{ID: "l5-24", Level: 5, Title: "Anne of Green Gables", Author: "Montgomery", Content: "Mrs. Rachel Lynde lived just where the Avonlea main road dipped down into a little hollow, fringed with alders and ladies' eardrops and traversed by a brook that had its source away back in the woods of the old Cuthbert place; it was reputed to be an intricate, headlong brook in its earlier course.", HasAudio: true},
	{ID: "l5-25", Level: 5, Title: "A Light Exists in Spring", Author: "Emily Dickinson", Content: "A light exists in spring not present on the year at any other period. When March is scarcely here a color stands abroad on solitary hills that science cannot overtake, but human nature feels. It waits upon the lawn; it shows the furthest tree upon the furthest slope we know.", HasAudio: true},
	{ID: "l5-26", Level: 5, Title: "The Call of the Wild", Author: "Jack London", Content: "Buck did not read the newspapers, or he would have known that trouble was brewing, not alone for himself, but for every tidewater dog, strong of muscle and with warm, long hair, from Puget Sound to San Diego. Buck lived at a big house in the sun-kissed Santa Clara Valley.", HasAudio: true},
	{ID: "l5-27", Level: 5, Title: "Trees", Author: "Joyce Kilmer", Content: "I think that I shall never see a poem lovely as a tree. A tree whose hungry mouth is prest against the earth's sweet flowing breast; a tree that looks at God all day, and lifts her leafy arms to pray; a tree that may in summer wear a nest of robins in her hair.", HasAudio: true},
	{ID: "l5-28", Level: 5, Title: "Little Women", Author: "Louisa May Alcott", Content: "Christmas won't be Christmas without any presents, grumbled Jo, lying on the rug. It's so dreadful to be poor, sighed Meg, looking down at her old dress. I don't think it's fair for some girls to have plenty of pretty things, and other girls nothing at all, added little Amy, with an injured sniff.", HasAudio: true},
	{ID: "l5-29", Level: 5, Title: "The Charge of the Light Brigade", Author: "Tennyson", Content: "Half a league, half a league, half a league onward, all in the valley of Death rode the six hundred. Forward, the Light Brigade! Charge for the guns, he said. Into the valley of Death rode the six hundred. Theirs not to reason why, theirs but to do and die.", HasAudio: true},
	{ID: "l5-30", Level: 5, Title: "The Velveteen Rabbit", Author: "Margery Williams", Content: "There was once a velveteen rabbit, and in the beginning he was really splendid. He was fat and bunchy, as a rabbit should be; his coat was spotted brown and white, he had real thread whiskers, and his ears were lined with pink sateen. On Christmas morning, he sat wedged in the top of the Boy's stocking.", HasAudio: true},
}

// TutorialPassage is the guided passage used by the tutorial flow.
var TutorialPassage = model.Passage{
	ID:      "tutorial-01",
	Level:   1,
	Title:   "Home Row",
	Content: "asdf jkl; asdf jkl; a sad lad; a flask; all fall;",
}

var all = concat(level1, level2, level3, level4, level5)

var byID = func() map[string]model.Passage {
	m := make(map[string]model.Passage, len(all))
	for _, p := range all {
		m[p.ID] = p
	}
	return m
}()

func concat(groups ...[]model.Passage) []model.Passage {
	var out []model.Passage
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// All returns every passage in catalog order.
func All() []model.Passage {
	out := make([]model.Passage, len(all))
	copy(out, all)
	return out
}

// ByLevel returns the ordered passages for a level.
func ByLevel(level int) []model.Passage {
	var out []model.Passage
	for _, p := range all {
		if p.Level == level {
			out = append(out, p)
		}
	}
	return out
}

// ByID looks up a passage by id.
func ByID(id string) (model.Passage, bool) {
	p, ok := byID[id]
	return p, ok
}

// LevelOf resolves a passage id to its level via the catalog entry,
// not by parsing the id.
func LevelOf(id string) (int, bool) {
	p, ok := byID[id]
	if !ok {
		return 0, false
	}
	return p.Level, true
}

// Next returns the first passage of the level not yet in completedIDs.
func Next(level int, completedIDs map[string]bool) (model.Passage, bool) {
	for _, p := range ByLevel(level) {
		if !completedIDs[p.ID] {
			return p, true
		}
	}
	return model.Passage{}, false
}
