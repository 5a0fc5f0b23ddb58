package searcher

// Hyperparameters for alpha-beta

// Constant part of the dynamic search depth, the higher the slower but stronger
const DefaultDepthBias = 1.2

// Keep every queen candidate; a ratio r > 1 drops further candidates of a ray with probability 1/r
const DefaultRatioKept = 1
